package previews

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Resolver answers "which preview file belongs to this image stem" against a
// snapshot of the preview root taken at construction time. Lookups are
// read-only and safe for concurrent use.
type Resolver struct {
	root   string
	byStem map[string][]string // lowercased stem -> relative paths, tie-break order
	files  int
}

// NewResolver walks root recursively and indexes every regular file by its
// lowercased stem.
func NewResolver(root string) (*Resolver, error) {
	r := &Resolver{root: root, byStem: make(map[string][]string)}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		stem := strings.ToLower(stemOf(rel))
		r.byStem[stem] = append(r.byStem[stem], rel)
		r.files++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("index previews under %s: %w", root, err)
	}

	for stem, candidates := range r.byStem {
		sortCandidates(candidates)
		r.byStem[stem] = candidates
	}
	return r, nil
}

// Resolve returns the absolute path of the preview matching the given stem,
// or false when no file under the root shares it. Matching ignores case and
// extension; ties resolve to the shortest relative path, then lexicographic.
func (r *Resolver) Resolve(stem string) (string, bool) {
	candidates := r.byStem[strings.ToLower(stem)]
	if len(candidates) == 0 {
		return "", false
	}
	return filepath.Join(r.root, candidates[0]), true
}

// Len returns the number of files indexed.
func (r *Resolver) Len() int { return r.files }

// Stems returns every distinct lowercased stem in the index.
func (r *Resolver) Stems() []string {
	out := make([]string, 0, len(r.byStem))
	for stem := range r.byStem {
		out = append(out, stem)
	}
	sort.Strings(out)
	return out
}

func sortCandidates(candidates []string) {
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})
}

// stemOf strips the directory and extension from a path.
func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

package previews

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// rawExtensions are the RAW camera formats recognized when scanning a source
// directory for coverage reporting.
var rawExtensions = map[string]struct{}{
	".cr3": {},
	".cr2": {},
	".dng": {},
	".nef": {},
	".arw": {},
	".raf": {},
	".rw2": {},
	".orf": {},
	".srw": {},
}

// EnumerateRaw lists RAW files under src, sorted for determinism. With
// recursive false only the top level is scanned.
func EnumerateRaw(src string, recursive bool) ([]string, error) {
	var out []string
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != src {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := rawExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate raw files under %s: %w", src, err)
	}
	sort.Strings(out)
	return out, nil
}

// Coverage summarizes how many RAW sources have a matching preview. Several
// RAW files can share one stem (e.g. a CR3 next to its DNG), so Matched and
// MissingStems count deduplicated stems and add up to UniqueStems, not to
// RawFiles.
type Coverage struct {
	RawFiles     int      `json:"raw_files"`
	UniqueStems  int      `json:"unique_stems"`
	Matched      int      `json:"matched"`
	MissingStems []string `json:"missing_stems"`
}

// ScanCoverage checks every RAW file under src against the resolver and
// reports the stems that still lack previews.
func ScanCoverage(src string, resolver *Resolver, recursive bool) (Coverage, error) {
	raws, err := EnumerateRaw(src, recursive)
	if err != nil {
		return Coverage{}, err
	}

	cov := Coverage{RawFiles: len(raws)}
	seen := make(map[string]struct{})
	for _, raw := range raws {
		stem := stemOf(raw)
		key := strings.ToLower(stem)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		cov.UniqueStems++
		if _, ok := resolver.Resolve(stem); ok {
			cov.Matched++
		} else {
			cov.MissingStems = append(cov.MissingStems, stem)
		}
	}
	sort.Strings(cov.MissingStems)
	return cov, nil
}

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrNoXMP indicates the catalog holds no XMP sidecar blob for an image.
var ErrNoXMP = errors.New("catalog: no xmp blob for image")

// Store is a read-only handle on an opened catalog.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to a .lrcat file. The connection is read-only so a catalog
// can be ingested while Lightroom has it open; the busy timeout covers
// transient locks from the owning application.
func Open(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("catalog %s is a directory", path)
	}

	dsn := "file:" + filepath.ToSlash(path) + "?" + url.Values{"mode": {"ro"}}.Encode()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA query_only = ON",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the catalog file location.
func (s *Store) Path() string { return s.path }

// Records reads every image row joined with its develop-settings blob and
// harvested EXIF metadata, ordered by image id for reproducible ingests.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	const query = `
SELECT
    i.id_local,
    f.idx_filename,
    f.baseName,
    ds.text,
    i.captureTime,
    i.pick,
    i.colorLabels,
    em.aperture,
    em.shutterSpeed,
    em.isoSpeedRating,
    em.focalLength,
    cm.value,
    lm.value,
    em.dateYear,
    em.dateMonth,
    em.dateDay
FROM Adobe_images i
JOIN AgLibraryFile f ON f.id_local = i.rootFile
LEFT JOIN Adobe_imageDevelopSettings ds ON ds.image = i.id_local
LEFT JOIN AgHarvestedExifMetadata em ON em.image = i.id_local
LEFT JOIN AgInternedExifCameraModel cm ON cm.id_local = em.cameraModelRef
LEFT JOIN AgInternedExifLens lm ON lm.id_local = em.lensRef
ORDER BY i.id_local`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec          Record
			fileName     sql.NullString
			baseName     sql.NullString
			developText  sql.NullString
			captureTime  sql.NullString
			pick         sql.NullFloat64
			colorLabel   sql.NullString
			aperture     sql.NullFloat64
			shutterSpeed sql.NullFloat64
			iso          sql.NullFloat64
			focalLength  sql.NullFloat64
			cameraModel  sql.NullString
			lens         sql.NullString
			dateYear     sql.NullFloat64
			dateMonth    sql.NullFloat64
			dateDay      sql.NullFloat64
		)
		if err := rows.Scan(
			&rec.ImageID,
			&fileName,
			&baseName,
			&developText,
			&captureTime,
			&pick,
			&colorLabel,
			&aperture,
			&shutterSpeed,
			&iso,
			&focalLength,
			&cameraModel,
			&lens,
			&dateYear,
			&dateMonth,
			&dateDay,
		); err != nil {
			return nil, fmt.Errorf("scan catalog record: %w", err)
		}

		rec.FileName = fileName.String
		rec.Stem = baseName.String
		if rec.Stem == "" && rec.FileName != "" {
			rec.Stem = strings.TrimSuffix(rec.FileName, filepath.Ext(rec.FileName))
		}
		rec.DevelopText = developText.String
		rec.CaptureTime = captureTime.String
		rec.Pick = int(pick.Float64)
		rec.ColorLabel = strings.TrimSpace(colorLabel.String)
		rec.Exif = Exif{
			Aperture:     aperture.Float64,
			ShutterSpeed: shutterSpeed.Float64,
			ISO:          iso.Float64,
			FocalLength:  focalLength.Float64,
			CameraModel:  cameraModel.String,
			Lens:         lens.String,
			DateYear:     int(dateYear.Float64),
			DateMonth:    int(dateMonth.Float64),
			DateDay:      int(dateDay.Float64),
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog records: %w", err)
	}
	return records, nil
}

// XMP returns the raw (usually zlib-compressed) XMP sidecar blob stored for
// an image, or ErrNoXMP when the catalog has none.
func (s *Store) XMP(ctx context.Context, imageID int64) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(
		ctx,
		`SELECT xmp FROM Adobe_AdditionalMetadata WHERE image = ?`,
		imageID,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoXMP
	}
	if err != nil {
		return nil, fmt.Errorf("query xmp blob: %w", err)
	}
	if len(blob) == 0 {
		return nil, ErrNoXMP
	}
	return blob, nil
}

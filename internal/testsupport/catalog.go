package testsupport

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CatalogImage describes one image row to seed into a fixture catalog.
type CatalogImage struct {
	ID          int64
	FileName    string
	BaseName    string
	DevelopText string
	CaptureTime string
	Pick        int
	ColorLabel  string

	Aperture     float64
	ShutterSpeed float64
	ISO          float64
	FocalLength  float64
	CameraModel  string
	Lens         string
	DateYear     int
	DateMonth    int
	DateDay      int

	XMP []byte
}

const catalogSchema = `
CREATE TABLE Adobe_images (
    id_local INTEGER PRIMARY KEY,
    rootFile INTEGER,
    captureTime TEXT,
    pick REAL,
    colorLabels TEXT
);
CREATE TABLE AgLibraryFile (
    id_local INTEGER PRIMARY KEY,
    idx_filename TEXT,
    baseName TEXT
);
CREATE TABLE Adobe_imageDevelopSettings (
    id_local INTEGER PRIMARY KEY,
    image INTEGER,
    text TEXT
);
CREATE TABLE AgHarvestedExifMetadata (
    id_local INTEGER PRIMARY KEY,
    image INTEGER,
    aperture REAL,
    shutterSpeed REAL,
    isoSpeedRating REAL,
    focalLength REAL,
    cameraModelRef INTEGER,
    lensRef INTEGER,
    dateYear REAL,
    dateMonth REAL,
    dateDay REAL
);
CREATE TABLE AgInternedExifCameraModel (
    id_local INTEGER PRIMARY KEY,
    value TEXT
);
CREATE TABLE AgInternedExifLens (
    id_local INTEGER PRIMARY KEY,
    value TEXT
);
CREATE TABLE Adobe_AdditionalMetadata (
    id_local INTEGER PRIMARY KEY,
    image INTEGER,
    xmp BLOB
);
`

// WriteCatalog creates a minimal .lrcat sqlite file at path containing the
// provided images. Camera and lens values are interned the way Lightroom
// stores them so store joins exercise the real shape.
func WriteCatalog(t testing.TB, path string, images []CatalogImage) {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		t.Fatalf("open fixture catalog: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(catalogSchema); err != nil {
		t.Fatalf("create fixture schema: %v", err)
	}

	cameraRefs := map[string]int64{}
	lensRefs := map[string]int64{}
	intern := func(table string, refs map[string]int64, value string) any {
		if value == "" {
			return nil
		}
		if id, ok := refs[value]; ok {
			return id
		}
		id := int64(len(refs) + 1)
		if _, err := db.Exec("INSERT INTO "+table+" (id_local, value) VALUES (?, ?)", id, value); err != nil {
			t.Fatalf("intern %s value: %v", table, err)
		}
		refs[value] = id
		return id
	}

	for i, img := range images {
		fileID := img.ID*10 + 1

		if _, err := db.Exec(
			"INSERT INTO AgLibraryFile (id_local, idx_filename, baseName) VALUES (?, ?, ?)",
			fileID, img.FileName, img.BaseName,
		); err != nil {
			t.Fatalf("insert file row: %v", err)
		}
		if _, err := db.Exec(
			"INSERT INTO Adobe_images (id_local, rootFile, captureTime, pick, colorLabels) VALUES (?, ?, ?, ?, ?)",
			img.ID, fileID, img.CaptureTime, float64(img.Pick), img.ColorLabel,
		); err != nil {
			t.Fatalf("insert image row: %v", err)
		}
		if img.DevelopText != "" {
			if _, err := db.Exec(
				"INSERT INTO Adobe_imageDevelopSettings (id_local, image, text) VALUES (?, ?, ?)",
				int64(i+1), img.ID, img.DevelopText,
			); err != nil {
				t.Fatalf("insert develop settings row: %v", err)
			}
		}
		if _, err := db.Exec(
			`INSERT INTO AgHarvestedExifMetadata
			 (id_local, image, aperture, shutterSpeed, isoSpeedRating, focalLength, cameraModelRef, lensRef, dateYear, dateMonth, dateDay)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			int64(i+1), img.ID,
			img.Aperture, img.ShutterSpeed, img.ISO, img.FocalLength,
			intern("AgInternedExifCameraModel", cameraRefs, img.CameraModel),
			intern("AgInternedExifLens", lensRefs, img.Lens),
			float64(img.DateYear), float64(img.DateMonth), float64(img.DateDay),
		); err != nil {
			t.Fatalf("insert exif row: %v", err)
		}
		if len(img.XMP) > 0 {
			if _, err := db.Exec(
				"INSERT INTO Adobe_AdditionalMetadata (id_local, image, xmp) VALUES (?, ?, ?)",
				int64(i+1), img.ID, img.XMP,
			); err != nil {
				t.Fatalf("insert xmp row: %v", err)
			}
		}
	}
}

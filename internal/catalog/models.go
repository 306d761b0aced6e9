package catalog

// Exif carries the harvested camera metadata joined to each image. Values
// are stored the way the catalog stores them; zero means the catalog had no
// value.
type Exif struct {
	Aperture     float64
	ShutterSpeed float64
	ISO          float64
	FocalLength  float64
	CameraModel  string
	Lens         string
	DateYear     int
	DateMonth    int
	DateDay      int
}

// Record is one image row from the catalog: identity, the raw
// develop-settings blob, and the exif metadata the assembler filters on.
type Record struct {
	ImageID     int64
	FileName    string
	Stem        string
	DevelopText string // empty when the catalog row has no settings blob
	CaptureTime string // catalog-native timestamp text, e.g. "2024-05-01T10:30:00"
	Pick        int    // 1 flagged, 0 unflagged, -1 rejected
	ColorLabel  string
	Exif        Exif
}

// Flagged reports whether the image carries a positive pick flag.
func (r Record) Flagged() bool { return r.Pick > 0 }

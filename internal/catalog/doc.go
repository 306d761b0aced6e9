// Package catalog reads image records out of a Lightroom .lrcat file.
//
// The catalog is an ordinary SQLite database; this package opens it
// read-only and joins the image, file, develop-settings, and harvested-EXIF
// tables into flat Records for the dataset assembler. It never writes: the
// catalog belongs to Lightroom and is treated as a foreign artifact.
//
// Develop-settings text is returned verbatim; decoding it belongs to the
// develop package. The zlib-compressed XMP sidecar blobs are exposed raw as
// well (see xmpmeta for decoding).
package catalog

// Package xmpmeta handles the XMP side of the catalog: decompressing the
// zlib-packed sidecar blobs Lightroom stores in Adobe_AdditionalMetadata,
// pulling camera-raw (crs:) settings out of the XML, and building a
// Lightroom-compatible develop-settings fragment from a slider map.
//
// XMP is informational only. The develop-settings text column stays
// authoritative for ingest; nothing here is merged back into decoded
// vectors.
package xmpmeta

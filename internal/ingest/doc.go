// Package ingest drives a full dataset build: read catalog records, decode
// develop settings across a worker pool, resolve previews, and write the
// training CSV. Each run holds an exclusive lock on the dataset directory so
// concurrent ingests cannot interleave output.
package ingest

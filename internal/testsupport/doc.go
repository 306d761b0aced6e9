// Package testsupport provides shared fixtures for devset tests, most
// importantly a writable Lightroom catalog builder so store and ingest tests
// can run against a real sqlite file instead of mocks.
package testsupport

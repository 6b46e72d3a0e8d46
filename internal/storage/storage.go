// Package storage abstracts the key-value persistence the organizer
// writes through. Backends only move opaque strings; document encoding
// and sanitization stay with the caller.
package storage

// Store reads and writes string values under string keys. Get reports
// ok=false when the key has never been written, which callers treat the
// same as an empty document.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

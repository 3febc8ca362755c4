package store

import "context"

// BlobStore is a keyed string store. Callers treat it as best-effort: a
// failed read or write never blocks the learning flow.
type BlobStore interface {
	// Read returns the value under key. ok is false when the key is absent.
	Read(ctx context.Context, key string) (value string, ok bool, err error)

	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key, value string) error
}

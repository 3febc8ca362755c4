package progress

import (
	"context"
	"fmt"

	"github.com/abhisek/skillstars/internal/store"
)

// StorageKey is the blob key the ledger lives under.
const StorageKey = "progress"

// Repo loads and saves the ledger through a BlobStore.
//
// Both operations are best-effort. The returned ledger is always usable and
// the error only explains a fallback or a dropped write; callers log it and
// carry on.
type Repo struct {
	blobs store.BlobStore
}

// NewRepo creates a Repo. A nil blobs yields an empty, unsaved ledger.
func NewRepo(blobs store.BlobStore) *Repo {
	return &Repo{blobs: blobs}
}

// Load reads the stored ledger, returning an empty one when the key is
// absent, unreadable or malformed.
func (r *Repo) Load(ctx context.Context) (Ledger, error) {
	if r.blobs == nil {
		return Ledger{}, nil
	}

	raw, ok, err := r.blobs.Read(ctx, StorageKey)
	if err != nil {
		return Ledger{}, fmt.Errorf("read ledger: %w", err)
	}
	if !ok {
		return Ledger{}, nil
	}

	l, err := Decode(raw)
	if err != nil {
		return Ledger{}, fmt.Errorf("decode ledger: %w", err)
	}
	return l, nil
}

// Save writes l. The in-memory ledger stays authoritative when it fails.
func (r *Repo) Save(ctx context.Context, l Ledger) error {
	if r.blobs == nil {
		return nil
	}

	raw, err := Encode(l)
	if err != nil {
		return err
	}
	if err := r.blobs.Write(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}

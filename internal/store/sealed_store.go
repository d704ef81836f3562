package store

import (
	"context"
	"errors"
	"fmt"

	"movefunnel/internal/domain"
)

// SealedStore encrypts snapshots before handing them to another store.
type SealedStore struct {
	inner      domain.SnapshotStore
	passphrase string
	kdf        scryptParams
}

// SealOption configures a SealedStore.
type SealOption func(*SealedStore)

// WithScryptCost overrides the key derivation cost. Lower values are only
// suitable for tests.
func WithScryptCost(n, r, p int) SealOption {
	return func(s *SealedStore) { s.kdf = scryptParams{N: n, R: r, P: p} }
}

// NewSealedStore wraps inner. An empty passphrase is rejected.
func NewSealedStore(inner domain.SnapshotStore, passphrase string, opts ...SealOption) (*SealedStore, error) {
	if passphrase == "" {
		return nil, errors.New("store: sealed store needs a passphrase")
	}
	s := &SealedStore{inner: inner, passphrase: passphrase, kdf: defaultScryptParams()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// LoadSnapshot reads and decrypts the snapshot under key.
func (s *SealedStore) LoadSnapshot(ctx context.Context, key string) ([]byte, bool, error) {
	b, ok, err := s.inner.LoadSnapshot(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}
	raw, err := open(s.passphrase, b)
	if err != nil {
		return nil, false, fmt.Errorf("open snapshot %s: %w", key, err)
	}
	return raw, true, nil
}

// SaveSnapshot encrypts data and stores it under key.
func (s *SealedStore) SaveSnapshot(ctx context.Context, key string, data []byte) error {
	b, err := seal(s.passphrase, data, s.kdf)
	if err != nil {
		return fmt.Errorf("seal snapshot %s: %w", key, err)
	}
	return s.inner.SaveSnapshot(ctx, key, b)
}

func (s *SealedStore) DeleteSnapshot(ctx context.Context, key string) error {
	return s.inner.DeleteSnapshot(ctx, key)
}

var _ domain.SnapshotStore = (*SealedStore)(nil)

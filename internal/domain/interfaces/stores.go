package interfaces

import "context"

// SnapshotStore persists opaque funnel snapshots by key.
//
// A missing key is reported as ok=false with a nil error.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context, key string) (data []byte, ok bool, err error)
	SaveSnapshot(ctx context.Context, key string, data []byte) error
	DeleteSnapshot(ctx context.Context, key string) error
}

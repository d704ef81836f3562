// Package store persists funnel snapshots.
//
// Every implementation satisfies domain.SnapshotStore and treats a snapshot
// as opaque bytes under a string key:
//   - FileStore writes one file per key, replacing it atomically
//   - SealedStore wraps another store and encrypts snapshots with a
//     passphrase, since they carry contact details
//   - MemoryStore keeps snapshots in a map, for tests and ephemeral servers
//
// The sqlite subpackage adds a database-backed store.
//
// Persister connects a funnel.Store to a SnapshotStore: it writes the latest
// state in the background after every change and never reports failures to
// the caller.
//
// All methods are safe for concurrent use.
package store

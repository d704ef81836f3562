// Package funnel owns a visitor's move plan: the initial state, the typed
// actions that change it, the pure reducer that applies them, and a Store
// that serialises dispatches and notifies subscribers.
//
// Reduce never mutates its input. A change produces a new *MoveState that
// shares untouched collections with the previous one; an action that changes
// nothing (an unknown room id, completing an already-completed step) returns
// the very same pointer, so callers detect change by pointer comparison.
//
// The Store does no I/O. Persistence and engagement tracking subscribe to
// its Change events. Flow layers step-level rules (room status transitions,
// contact validation, the summary checkpoint) on top of the Store's public
// operations.
//
// Concurrency: Store is safe for concurrent use. Subscribers run on the
// dispatching goroutine while the Store lock is held and must not dispatch.
package funnel

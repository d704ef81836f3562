// Package session creates and tracks funnel sessions.
//
// Each session owns a state store, its step controller, an engagement
// tracker and a persister that mirrors every change to the snapshot store.
// Live sessions are held in a bounded LRU; an evicted session is flushed and
// reloaded from its snapshot on next use.
package session

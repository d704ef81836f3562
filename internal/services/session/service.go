package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"movefunnel/internal/domain"
	"movefunnel/internal/funnel"
	"movefunnel/internal/observability"
	"movefunnel/internal/services/engagement"
	"movefunnel/internal/store"
)

// DefaultMaxSessions bounds the live sessions held in memory.
const DefaultMaxSessions = 1024

type errString string

func (e errString) Error() string { return string(e) }

// ErrNotFound is returned for ids with neither a live session nor a snapshot.
const ErrNotFound errString = "session not found"

// Session is one visitor's funnel.
type Session struct {
	ID      string
	Store   *funnel.Store
	Flow    *funnel.Flow
	Tracker *engagement.Tracker

	persister *store.Persister
	detach    []func()
	closeOnce sync.Once
	closeErr  error
}

// Close detaches the session's subscribers and flushes its last snapshot.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		for _, d := range s.detach {
			d()
		}
		s.closeErr = s.persister.Close()
	})
	return s.closeErr
}

// Manager owns the live sessions.
//
// Lookups go through three tiers:
//   - The in-memory LRU of live sessions.
//   - The snapshot store, which is hydrated into a fresh session.
//   - ErrNotFound.
type Manager struct {
	snapshots domain.SnapshotStore
	log       *observability.Logger
	metrics   *observability.Metrics
	newID     func() string

	mu      sync.Mutex
	cache   *lru.Cache[string, *Session]
	closing map[string]*Session // evicted, not yet flushed
	evicted []*Session
}

// NewManager returns a Manager holding at most maxSessions live sessions
// (DefaultMaxSessions when maxSessions <= 0). log and metrics may be nil.
func NewManager(
	snapshots domain.SnapshotStore,
	log *observability.Logger,
	metrics *observability.Metrics,
	maxSessions int,
) (*Manager, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	m := &Manager{
		snapshots: snapshots,
		log:       observability.OrNop(log).Component("sessions"),
		metrics:   metrics,
		newID:     uuid.NewString,
		closing:   make(map[string]*Session),
	}
	cache, err := lru.NewWithEvict(maxSessions, m.onEvict)
	if err != nil {
		return nil, fmt.Errorf("session cache: %w", err)
	}
	m.cache = cache
	return m, nil
}

// SnapshotKey is the storage key of a session's snapshot.
func SnapshotKey(id string) string { return funnel.StorageKey + ":" + id }

// Create starts a session at InitialState and writes its first snapshot.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	id := m.newID()
	sess := m.open(id, nil)

	data, err := funnel.MarshalSnapshot(sess.Store.State())
	if err == nil {
		err = m.snapshots.SaveSnapshot(ctx, SnapshotKey(id), data)
	}
	if err != nil {
		_ = sess.Close()
		return nil, fmt.Errorf("create session: %w", err)
	}

	m.mu.Lock()
	m.cache.Add(id, sess)
	m.mu.Unlock()
	m.flushEvicted()
	m.updateGauge()

	m.log.WithContext(observability.ContextWithSessionID(ctx, id)).Info("session created")
	return sess, nil
}

// Get returns the live session for id, restoring it from its snapshot when
// it is not in memory.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	m.mu.Lock()
	if sess, ok := m.cache.Get(id); ok {
		m.mu.Unlock()
		return sess, nil
	}
	flushing := m.closing[id]
	m.mu.Unlock()

	// An evicted session may still be writing its last snapshot.
	if flushing != nil {
		_ = flushing.Close()
	}

	state, ok, err := store.LoadState(ctx, m.snapshots, SnapshotKey(id))
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	fresh := m.open(id, state)

	m.mu.Lock()
	sess, raced := m.cache.Get(id)
	if !raced {
		sess = fresh
		m.cache.Add(id, sess)
	}
	m.mu.Unlock()

	if raced {
		_ = fresh.Close()
		return sess, nil
	}
	m.flushEvicted()
	m.updateGauge()
	m.log.WithContext(observability.ContextWithSessionID(ctx, id)).Debug("session restored")
	return sess, nil
}

// Reset returns the session for id to InitialState. Its snapshot is
// replaced by the initial state.
func (m *Manager) Reset(ctx context.Context, id string) (*Session, error) {
	sess, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Store.Reset()
	return sess, nil
}

// Evict flushes and drops the live session for id. Its snapshot stays.
func (m *Manager) Evict(id string) {
	m.mu.Lock()
	m.cache.Remove(id)
	m.mu.Unlock()
	m.flushEvicted()
	m.updateGauge()
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Len()
}

// Close flushes every live session.
func (m *Manager) Close() error {
	m.mu.Lock()
	m.cache.Purge()
	m.mu.Unlock()
	m.flushEvicted()
	m.metrics.SetSessionsActive(0)
	return nil
}

// open wires a session around state (InitialState when nil). Subscribers
// are attached after hydration so restoring a session does not rewrite its
// snapshot.
func (m *Manager) open(id string, state *domain.MoveState) *Session {
	st := funnel.NewStore(nil)
	if state != nil {
		st.Hydrate(state)
	}

	key := SnapshotKey(id)
	log := m.log.With("session_id", id)
	sess := &Session{
		ID:        id,
		Store:     st,
		Flow:      funnel.NewFlow(st),
		Tracker:   engagement.NewTracker(log),
		persister: store.NewPersister(m.snapshots, key, log, m.metrics),
	}
	sess.detach = append(sess.detach,
		sess.persister.Attach(st),
		sess.Tracker.Attach(st),
		st.Subscribe(func(c funnel.Change) { m.metrics.RecordAction(string(c.Action.Type())) }),
	)
	return sess
}

// onEvict runs under m.mu. It only queues the session; flushEvicted closes
// it once the lock is released.
func (m *Manager) onEvict(id string, sess *Session) {
	m.closing[id] = sess
	m.evicted = append(m.evicted, sess)
}

// flushEvicted closes the sessions evicted so far. Callers must not hold m.mu.
func (m *Manager) flushEvicted() {
	m.mu.Lock()
	queue := m.evicted
	m.evicted = nil
	m.mu.Unlock()

	for _, sess := range queue {
		if err := sess.Close(); err != nil {
			m.log.Warn("flush evicted session", "session_id", sess.ID, "error", err)
		}
		m.mu.Lock()
		if m.closing[sess.ID] == sess {
			delete(m.closing, sess.ID)
		}
		m.mu.Unlock()
	}
}

func (m *Manager) updateGauge() {
	m.metrics.SetSessionsActive(m.Len())
}

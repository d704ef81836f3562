package store

import (
	"context"
	"sync"
	"time"

	"movefunnel/internal/domain"
	"movefunnel/internal/funnel"
	"movefunnel/internal/observability"
)

const writeTimeout = 5 * time.Second

// pendingWrite saves data under the key, deleting the old snapshot first
// when delete is set.
type pendingWrite struct {
	data   []byte
	delete bool
}

// Persister writes a session's latest state after every change. Writes run
// on a background goroutine; a newer state replaces one still waiting to be
// written, so at most one write is pending. Failures are logged and counted.
type Persister struct {
	snapshots domain.SnapshotStore
	key       string
	log       *observability.Logger
	metrics   *observability.Metrics

	mu      sync.Mutex
	pending *pendingWrite
	closed  bool

	wake      chan struct{}
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewPersister starts a persister writing to snapshots under key. log and
// metrics may be nil.
func NewPersister(snapshots domain.SnapshotStore, key string, log *observability.Logger, metrics *observability.Metrics) *Persister {
	p := &Persister{
		snapshots: snapshots,
		key:       key,
		log:       observability.OrNop(log).Component("persister").With("key", key),
		metrics:   metrics,
		wake:      make(chan struct{}, 1),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go p.run()
	return p
}

// Attach subscribes the persister to st.
func (p *Persister) Attach(st *funnel.Store) (detach func()) {
	return st.Subscribe(p.OnChange)
}

// OnChange queues the state after c. A reset deletes the snapshot and then
// writes the fresh state back.
func (p *Persister) OnChange(c funnel.Change) {
	data, err := funnel.MarshalSnapshot(c.Next)
	if err != nil {
		p.log.Warn("encode snapshot", "error", err)
		p.metrics.RecordSnapshotWrite(err)
		return
	}
	w := &pendingWrite{data: data, delete: c.IsReset()}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.log.Debug("change after close dropped", "action", c.Action.Type())
		return
	}
	p.pending = w
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Close writes any pending state and stops the background goroutine.
func (p *Persister) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.quit)
	})
	<-p.done
	return nil
}

func (p *Persister) run() {
	defer close(p.done)
	for {
		select {
		case <-p.wake:
			p.drain()
		case <-p.quit:
			p.drain()
			return
		}
	}
}

func (p *Persister) drain() {
	for {
		p.mu.Lock()
		w := p.pending
		p.pending = nil
		p.mu.Unlock()
		if w == nil {
			return
		}
		p.write(w)
	}
}

func (p *Persister) write(w *pendingWrite) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var err error
	if w.delete {
		err = p.snapshots.DeleteSnapshot(ctx, p.key)
	}
	if err == nil {
		err = p.snapshots.SaveSnapshot(ctx, p.key, w.data)
	}
	p.metrics.RecordSnapshotWrite(err)
	if err != nil {
		p.log.Warn("persist snapshot", "reset", w.delete, "error", err)
	}
}

// LoadState restores the state stored under key. ok is false when there is
// no snapshot or it cannot be parsed; the initial state is returned then.
func LoadState(ctx context.Context, snapshots domain.SnapshotStore, key string) (*domain.MoveState, bool, error) {
	data, ok, err := snapshots.LoadSnapshot(ctx, key)
	if err != nil {
		return funnel.InitialState(), false, err
	}
	if !ok {
		return funnel.InitialState(), false, nil
	}
	s, ok := funnel.RestoreSnapshot(data)
	return s, ok, nil
}

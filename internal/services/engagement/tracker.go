package engagement

import (
	"slices"
	"sync"

	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
	"movefunnel/internal/estimate"
	"movefunnel/internal/funnel"
	"movefunnel/internal/observability"
)

// Achievement is a badge unlocked during inventory.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

const (
	AchievementFirstRoom       = "first_room"
	AchievementHalfway         = "halfway"
	AchievementInventoryMaster = "inventory_master"
	AchievementDetailOriented  = "detail_oriented"

	detailOrientedItems = 20
	maxPendingEvents    = 32
)

var achievements = []Achievement{
	{ID: AchievementFirstRoom, Name: "First Room!", Icon: "🎯", Description: "Completed your first room"},
	{ID: AchievementHalfway, Name: "Halfway There!", Icon: "🚀", Description: "Completed half of your rooms"},
	{ID: AchievementInventoryMaster, Name: "Inventory Master", Icon: "👑", Description: "Completed all rooms"},
	{ID: AchievementDetailOriented, Name: "Detail Oriented", Icon: "🔍", Description: "Added 20+ items"},
}

// Achievements lists every badge in display order.
func Achievements() []Achievement { return slices.Clone(achievements) }

// EventKind tells a client which effect to play.
type EventKind string

const (
	EventRoomComplete EventKind = "room_complete"
	EventAchievement  EventKind = "achievement"
)

// Event is one celebration waiting to be shown.
type Event struct {
	Kind        EventKind    `json:"kind"`
	RoomID      string       `json:"roomId,omitempty"`
	RoomName    string       `json:"roomName,omitempty"`
	Achievement *Achievement `json:"achievement,omitempty"`
	// Milestone asks for the larger confetti burst.
	Milestone bool `json:"milestone"`
}

// Status is the tracker's view of a session.
type Status struct {
	Streak         int           `json:"streak"`
	ShowStreak     bool          `json:"showStreak"`
	CompletedRooms int           `json:"completedRooms"`
	TotalRooms     int           `json:"totalRooms"`
	TotalItems     int           `json:"totalItems"`
	MoversWatching int           `json:"moversWatching"`
	Unlocked       []Achievement `json:"unlocked"`
}

// Tracker follows one session's store. Events accumulate until drained.
type Tracker struct {
	log *observability.Logger

	mu       sync.Mutex
	streak   int
	unlocked []string
	events   []Event
	status   Status
}

// NewTracker returns an empty tracker. log may be nil.
func NewTracker(log *observability.Logger) *Tracker {
	return &Tracker{log: observability.OrNop(log).Component("engagement")}
}

// Attach subscribes the tracker to st, first unlocking whatever st's current
// state already earns without raising events.
func (t *Tracker) Attach(st *funnel.Store) (detach func()) {
	t.mu.Lock()
	t.evaluate(st.State(), false)
	t.mu.Unlock()
	return st.Subscribe(t.OnChange)
}

// OnChange updates streaks and achievements after c.
func (t *Tracker) OnChange(c funnel.Change) {
	if !c.Changed() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if c.IsReset() {
		t.streak = 0
		t.unlocked = nil
		t.events = nil
		t.evaluate(c.Next, false)
		return
	}
	if _, ok := c.Action.(funnel.Hydrate); ok {
		t.evaluate(c.Next, false)
		return
	}

	for _, tr := range c.Rooms {
		if !tr.Celebrates() {
			continue
		}
		t.streak++
		t.push(Event{Kind: EventRoomComplete, RoomID: tr.RoomID, RoomName: tr.Name})
		t.log.Debug("room complete", "room_id", tr.RoomID, "streak", t.streak)
	}
	t.evaluate(c.Next, true)
}

// evaluate unlocks every achievement s earns. Callers hold t.mu.
func (t *Tracker) evaluate(s *domain.MoveState, announce bool) {
	completed := 0
	for _, r := range s.Rooms {
		if r.Status == types.RoomComplete {
			completed++
		}
	}
	total := len(s.Rooms)
	items := estimate.TotalItems(s.Rooms)

	earned := map[string]bool{
		AchievementFirstRoom:       completed >= 1,
		AchievementHalfway:         total > 1 && completed >= (total+1)/2,
		AchievementInventoryMaster: total > 1 && completed == total,
		AchievementDetailOriented:  items >= detailOrientedItems,
	}
	for _, a := range achievements {
		if !earned[a.ID] || slices.Contains(t.unlocked, a.ID) {
			continue
		}
		t.unlocked = append(t.unlocked, a.ID)
		if announce {
			milestone := a.ID == AchievementHalfway || a.ID == AchievementInventoryMaster
			t.push(Event{Kind: EventAchievement, Achievement: &a, Milestone: milestone})
			t.log.Info("achievement unlocked", "achievement", a.ID)
		}
	}

	t.status = Status{
		CompletedRooms: completed,
		TotalRooms:     total,
		TotalItems:     items,
		MoversWatching: estimate.WatchingMovers(items),
	}
}

func (t *Tracker) push(e Event) {
	t.events = append(t.events, e)
	if n := len(t.events); n > maxPendingEvents {
		t.events = slices.Clone(t.events[n-maxPendingEvents:])
	}
}

// Status returns the current streak, counts and unlocked badges.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.status
	st.Streak = t.streak
	st.ShowStreak = t.streak >= 2
	st.Unlocked = make([]Achievement, 0, len(t.unlocked))
	for _, a := range achievements {
		if slices.Contains(t.unlocked, a.ID) {
			st.Unlocked = append(st.Unlocked, a)
		}
	}
	return st
}

// Drain returns the events raised since the last call and clears them.
func (t *Tracker) Drain() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.events
	t.events = nil
	if out == nil {
		out = []Event{}
	}
	return out
}

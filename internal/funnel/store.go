package funnel

import (
	"sync"

	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

// RoomTransition is a status change of one room caused by an action.
type RoomTransition struct {
	RoomID string
	Name   string
	From   domain.RoomStatus
	To     domain.RoomStatus
	// Existed is false for rooms the action added.
	Existed bool
}

// Celebrates reports whether the room was just completed: it now is, it was
// not before, and it existed before the action.
func (t RoomTransition) Celebrates() bool {
	return t.Existed && t.To == types.RoomComplete && t.From != types.RoomComplete
}

// Change describes one dispatched action.
type Change struct {
	Action Action
	Prev   *domain.MoveState
	Next   *domain.MoveState
	// Rooms lists status transitions. Reset and Hydrate report none.
	Rooms []RoomTransition
}

// Changed reports whether the action produced a new state.
func (c Change) Changed() bool { return c.Prev != c.Next }

// IsReset reports whether the change cleared the session.
func (c Change) IsReset() bool {
	_, ok := c.Action.(Reset)
	return ok
}

// Subscriber receives every Change, no-ops included.
type Subscriber func(Change)

// Store holds one session's state. Every dispatch replaces the state pointer
// and then notifies subscribers in registration order.
type Store struct {
	mu     sync.Mutex
	state  *domain.MoveState
	subs   map[int]Subscriber
	order  []int
	nextID int
}

// NewStore returns a Store holding initial, or InitialState when nil.
func NewStore(initial *domain.MoveState) *Store {
	if initial == nil {
		initial = InitialState()
	} else {
		initial = normalize(initial.Clone())
	}
	return &Store{state: initial, subs: make(map[int]Subscriber)}
}

// State returns the current state. Callers must not modify it.
func (s *Store) State() *domain.MoveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn and returns a function that removes it. fn runs on
// the dispatching goroutine with the Store locked; it must not dispatch.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Dispatch applies a and returns the resulting Change.
func (s *Store) Dispatch(a Action) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	next := Reduce(prev, a)
	s.state = next

	c := Change{Action: a, Prev: prev, Next: next}
	switch a.(type) {
	case Reset, Hydrate:
	default:
		if next != prev {
			c.Rooms = roomTransitions(prev.Rooms, next.Rooms)
		}
	}

	live := s.order[:0]
	for _, id := range s.order {
		if fn, ok := s.subs[id]; ok {
			live = append(live, id)
			fn(c)
		}
	}
	s.order = live
	return c
}

func roomTransitions(prev, next []domain.Room) []RoomTransition {
	before := make(map[string]domain.RoomStatus, len(prev))
	for _, r := range prev {
		before[r.ID] = r.Status
	}
	var out []RoomTransition
	for _, r := range next {
		from, existed := before[r.ID]
		if existed && from == r.Status {
			continue
		}
		out = append(out, RoomTransition{
			RoomID:  r.ID,
			Name:    r.Name,
			From:    from,
			To:      r.Status,
			Existed: existed,
		})
	}
	return out
}

func (s *Store) SetStep(step domain.Step) Change { return s.Dispatch(SetStep{Step: step}) }

// CompleteStep appends step to the completed set unless already present.
func (s *Store) CompleteStep(step domain.Step) Change {
	return s.Dispatch(CompleteStep{Step: step})
}

func (s *Store) SetBasics(p domain.BasicsPatch) Change { return s.Dispatch(SetBasics{Basics: p}) }

func (s *Store) SetRooms(rooms []domain.Room) Change { return s.Dispatch(SetRooms{Rooms: rooms}) }

func (s *Store) AddRoom(r domain.Room) Change { return s.Dispatch(AddRoom{Room: r}) }

func (s *Store) UpdateRoom(id string, p domain.RoomPatch) Change {
	return s.Dispatch(UpdateRoom{RoomID: id, Room: p})
}

func (s *Store) RemoveRoom(id string) Change { return s.Dispatch(RemoveRoom{RoomID: id}) }

func (s *Store) UpdateRoomFurniture(id string, furniture []domain.FurnitureItem) Change {
	return s.Dispatch(UpdateRoomFurniture{RoomID: id, Furniture: furniture})
}

func (s *Store) UpdateRoomBoxes(id string, p domain.BoxEstimatesPatch) Change {
	return s.Dispatch(UpdateRoomBoxes{RoomID: id, Boxes: p})
}

func (s *Store) SetRoomStatus(id string, status domain.RoomStatus) Change {
	return s.Dispatch(SetRoomStatus{RoomID: id, Status: status})
}

func (s *Store) ToggleSpecialItem(id string) Change {
	return s.Dispatch(ToggleSpecialItem{ItemID: id})
}

func (s *Store) SetSpecialItemQuantity(id string, quantity int) Change {
	return s.Dispatch(SetSpecialItemQuantity{ItemID: id, Quantity: quantity})
}

func (s *Store) ToggleService(id string) Change { return s.Dispatch(ToggleService{ServiceID: id}) }

func (s *Store) ToggleServiceSuboption(serviceID, subOptionID string) Change {
	return s.Dispatch(ToggleServiceSuboption{ServiceID: serviceID, SubOptionID: subOptionID})
}

func (s *Store) SetEstimate(e domain.MoveEstimate) Change {
	return s.Dispatch(SetEstimate{Estimate: e})
}

func (s *Store) SetBoxCounts(b domain.BoxCounts) Change {
	return s.Dispatch(SetBoxCounts{BoxCounts: b})
}

func (s *Store) SetContactInfo(info domain.ContactInfo) Change {
	return s.Dispatch(SetContactInfo{Info: info})
}

func (s *Store) SetContactPreferences(p domain.ContactPreferencesPatch) Change {
	return s.Dispatch(SetContactPreferences{Prefs: p})
}

func (s *Store) ToggleMover(id string) Change { return s.Dispatch(ToggleMover{MoverID: id}) }

func (s *Store) SetExitIntentShown() Change { return s.Dispatch(SetExitIntentShown{}) }

func (s *Store) SetEmailCaptured(email string) Change {
	return s.Dispatch(SetEmailCaptured{Email: email})
}

func (s *Store) SetAIInsight(text string) Change { return s.Dispatch(SetAIInsight{Insight: text}) }

// Reset restores InitialState. Persistence subscribers delete the snapshot.
func (s *Store) Reset() Change { return s.Dispatch(Reset{}) }

// Hydrate replaces the state wholesale.
func (s *Store) Hydrate(state *domain.MoveState) Change {
	return s.Dispatch(Hydrate{State: state})
}

package funnel

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"movefunnel/internal/catalog"
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
	"movefunnel/internal/estimate"
)

type errString string

func (e errString) Error() string { return string(e) }

const (
	ErrNoRooms         = errString("funnel: at least one room is required")
	ErrUnknownRoom     = errString("funnel: unknown room")
	ErrUnknownRoomType = errString("funnel: unknown room type")
	ErrUnknownItem     = errString("funnel: unknown catalog item")
	ErrUnknownStep     = errString("funnel: unknown step")
)

// Flow applies the rules of the funnel pages on top of a Store. Every method
// is built from public Store operations, so subscribers see the same actions
// a client dispatching them one by one would produce.
type Flow struct {
	mu    sync.Mutex // serialises read-then-write step operations
	store *Store
	newID func() string
}

// NewFlow returns a Flow driving store.
func NewFlow(store *Store) *Flow {
	return &Flow{store: store, newID: uuid.NewString}
}

// Store returns the underlying store.
func (f *Flow) Store() *Store { return f.store }

// ChooseRooms replaces the room list from per-type counts, records box
// counts and moves on to the inventory step. boxes carries the visitor's own
// small/medium/large figures; nil means the per-room defaults.
func (f *Flow) ChooseRooms(counts map[domain.RoomType]int, boxes *domain.BoxCounts) (*domain.MoveState, error) {
	total := 0
	for t, n := range counts {
		if _, ok := catalog.RoomTemplateFor(t); !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownRoomType, t)
		}
		total += max(n, 0)
	}
	if total == 0 {
		return nil, ErrNoRooms
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	rooms := make([]domain.Room, 0, total)
	for _, tmpl := range catalog.RoomTemplates() {
		n := max(counts[tmpl.Type], 0)
		for i := range n {
			name := tmpl.Name
			if n > 1 {
				name = fmt.Sprintf("%s %d", tmpl.Name, i+1)
			}
			rooms = append(rooms, newRoom(fmt.Sprintf("room-%d", len(rooms)+1), name, tmpl.Type))
		}
	}

	bc := estimate.BoxCountsForRoomTypes(counts)
	if boxes != nil {
		bc.Small, bc.Medium, bc.Large = max(boxes.Small, 0), max(boxes.Medium, 0), max(boxes.Large, 0)
		bc.Total = bc.Small + bc.Medium + bc.Large
	}

	f.store.SetRooms(rooms)
	f.store.SetBoxCounts(bc)
	f.store.CompleteStep(types.StepBasics)
	return f.store.SetStep(types.StepInventory).Next, nil
}

// AddCustomRoom appends a room of type t. An empty name uses the template
// name, numbered when a room of that name already exists.
func (f *Flow) AddCustomRoom(t domain.RoomType, name string) (domain.Room, error) {
	tmpl, ok := catalog.RoomTemplateFor(t)
	if !ok {
		return domain.Room{}, fmt.Errorf("%w %q", ErrUnknownRoomType, t)
	}
	if name == "" {
		name = tmpl.Name
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	name = uniqueName(f.store.State().Rooms, name)
	r := newRoom(f.newID(), name, t)
	f.store.AddRoom(r)
	return r, nil
}

func uniqueName(rooms []domain.Room, name string) string {
	taken := func(n string) bool {
		return slices.ContainsFunc(rooms, func(r domain.Room) bool { return r.Name == n })
	}
	if !taken(name) {
		return name
	}
	for i := 2; ; i++ {
		if n := fmt.Sprintf("%s %d", name, i); !taken(n) {
			return n
		}
	}
}

func newRoom(id, name string, t domain.RoomType) domain.Room {
	return domain.Room{
		ID:        id,
		Name:      name,
		Type:      t,
		Status:    types.RoomNotStarted,
		Furniture: []domain.FurnitureItem{},
	}
}

// EditFurniture replaces a room's furniture. A non-empty list moves a room
// that is not complete to in_progress.
func (f *Flow) EditFurniture(roomID string, furniture []domain.FurnitureItem) (*domain.MoveState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editFurniture(roomID, furniture)
}

func (f *Flow) editFurniture(roomID string, furniture []domain.FurnitureItem) (*domain.MoveState, error) {
	if _, ok := f.store.State().Room(roomID); !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownRoom, roomID)
	}
	next := f.store.UpdateRoomFurniture(roomID, furniture).Next
	r, _ := next.Room(roomID)
	if len(r.Furniture) > 0 && r.Status != types.RoomComplete {
		next = f.store.SetRoomStatus(roomID, types.RoomInProgress).Next
	}
	return next, nil
}

// AdjustFurniture changes the count of one catalog item in a room by delta.
// A count that reaches zero removes the item.
func (f *Flow) AdjustFurniture(roomID, itemID string, delta int) (*domain.MoveState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.store.State().Room(roomID)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownRoom, roomID)
	}
	items := slices.Clone(r.Furniture)
	i := slices.IndexFunc(items, func(it domain.FurnitureItem) bool { return it.ID == itemID })
	switch {
	case i >= 0:
		items[i].Count += delta
		if items[i].Count <= 0 {
			items = slices.Delete(items, i, i+1)
		}
	case delta > 0:
		it, ok := catalog.Furniture(r.Type, itemID)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownItem, itemID)
		}
		it.Count = delta
		items = append(items, it)
	default:
		return f.store.State(), nil
	}
	return f.editFurniture(roomID, items)
}

// SelectRoom switches the active inventory room. Leaving a room that holds
// furniture completes it.
func (f *Flow) SelectRoom(fromID, toID string) (*domain.MoveState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.store.State()
	if _, ok := s.Room(toID); !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownRoom, toID)
	}
	if fromID != "" && fromID != toID {
		f.completeIfFurnished(fromID)
	}
	return f.store.State(), nil
}

// FinishInventory completes the current room if it holds furniture and moves
// on to the special-items step.
func (f *Flow) FinishInventory(currentID string) (*domain.MoveState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if currentID != "" {
		f.completeIfFurnished(currentID)
	}
	f.store.CompleteStep(types.StepInventory)
	return f.store.SetStep(types.StepSpecialItems).Next, nil
}

func (f *Flow) completeIfFurnished(roomID string) {
	r, ok := f.store.State().Room(roomID)
	if ok && len(r.Furniture) > 0 && r.Status != types.RoomComplete {
		f.store.SetRoomStatus(roomID, types.RoomComplete)
	}
}

// AdjustSpecialItem adds delta to a special item's quantity. The store keeps
// the quantity at one or more.
func (f *Flow) AdjustSpecialItem(itemID string, delta int) (*domain.MoveState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.store.State()
	i := slices.IndexFunc(s.SpecialItems, func(it domain.SpecialItem) bool { return it.ID == itemID })
	if i < 0 {
		return nil, fmt.Errorf("%w %q", ErrUnknownItem, itemID)
	}
	return f.store.SetSpecialItemQuantity(itemID, s.SpecialItems[i].Quantity+delta).Next, nil
}

// Summarize is the summary checkpoint: it caches the granular estimate and
// the room-based box counts for the contact and quotes steps.
func (f *Flow) Summarize() domain.MoveEstimate {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.store.State()
	est := estimate.Granular(s)
	f.store.SetEstimate(est)
	f.store.SetBoxCounts(estimate.GranularBoxCounts(s))
	f.store.CompleteStep(types.StepSummary)
	return est
}

// SubmitContact validates the contact form and records it. On a validation
// failure nothing is written and the *ValidationError is returned.
func (f *Flow) SubmitContact(info domain.ContactInfo, prefs domain.ContactPreferencesPatch) (*domain.MoveState, error) {
	if err := ValidateContact(info); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.store.SetContactInfo(info)
	f.store.SetContactPreferences(prefs)
	f.store.CompleteStep(types.StepContact)
	return f.store.SetStep(types.StepQuotes).Next, nil
}

// CaptureEmail records the address offered in the exit-intent prompt.
func (f *Flow) CaptureEmail(email string) (*domain.MoveState, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	return f.store.SetEmailCaptured(email).Next, nil
}

// Advance completes the current step and moves to step.
func (f *Flow) Advance(step domain.Step) (*domain.MoveState, error) {
	if !catalog.IsKnownStep(step) {
		return nil, fmt.Errorf("%w %q", ErrUnknownStep, step)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if cur := f.store.State().CurrentStep; cur != "" && cur != types.StepLanding {
		f.store.CompleteStep(cur)
	}
	return f.store.SetStep(step).Next, nil
}

// IsLookupError reports whether err is a missing room, item, type or step.
func IsLookupError(err error) bool {
	return errors.Is(err, ErrUnknownRoom) || errors.Is(err, ErrUnknownItem) ||
		errors.Is(err, ErrUnknownRoomType) || errors.Is(err, ErrUnknownStep)
}

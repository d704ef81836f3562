package funnel

import (
	"movefunnel/internal/catalog"
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

// StorageKey is the snapshot key of a funnel session.
const StorageKey = "moving-funnel-state"

// InitialState returns a fresh default state. Nothing in it is shared with
// earlier calls.
func InitialState() *domain.MoveState {
	return &domain.MoveState{
		CurrentStep:    types.StepLanding,
		CompletedSteps: []domain.Step{},
		Rooms:          []domain.Room{},
		SpecialItems:   catalog.SpecialItems(),
		Services:       catalog.Services(),
		ContactPreferences: domain.ContactPreferences{
			Method:           types.ContactCall,
			BestTime:         types.TimeAnytime,
			ConsentToContact: true,
		},
		SelectedMovers: []string{},
	}
}

// withDefaults fills the parts of a partial or older state that are missing
// with their InitialState values: an empty step, nil catalog slices and unset
// contact preferences.
func withDefaults(s *domain.MoveState) *domain.MoveState {
	def := InitialState()
	if s.CurrentStep == "" {
		s.CurrentStep = def.CurrentStep
	}
	if s.SpecialItems == nil {
		s.SpecialItems = def.SpecialItems
	}
	if s.Services == nil {
		s.Services = def.Services
	}
	p := &s.ContactPreferences
	if *p == (domain.ContactPreferences{}) {
		*p = def.ContactPreferences
	}
	if p.Method == "" {
		p.Method = def.ContactPreferences.Method
	}
	if p.BestTime == "" {
		p.BestTime = def.ContactPreferences.BestTime
	}
	return s
}

// normalize enforces the stored-state invariants on a state the caller owns:
// non-nil collections, derived route flags and no zero-count furniture.
func normalize(s *domain.MoveState) *domain.MoveState {
	if s.CompletedSteps == nil {
		s.CompletedSteps = []domain.Step{}
	}
	if s.Rooms == nil {
		s.Rooms = []domain.Room{}
	}
	for i := range s.Rooms {
		s.Rooms[i] = normalizeRoom(s.Rooms[i])
	}
	if s.SpecialItems == nil {
		s.SpecialItems = []domain.SpecialItem{}
	}
	for i := range s.SpecialItems {
		s.SpecialItems[i].Quantity = max(s.SpecialItems[i].Quantity, 1)
	}
	if s.Services == nil {
		s.Services = []domain.AdditionalService{}
	}
	if s.SelectedMovers == nil {
		s.SelectedMovers = []string{}
	}
	s.Basics.RouteInfo = normalizeRoute(s.Basics.RouteInfo)
	return s
}

func normalizeRoom(r domain.Room) domain.Room {
	r.Furniture = pruneFurniture(r.Furniture)
	if r.Status == "" {
		r.Status = types.RoomNotStarted
	}
	return r
}

// pruneFurniture copies items, dropping entries whose count is not positive.
func pruneFurniture(items []domain.FurnitureItem) []domain.FurnitureItem {
	out := make([]domain.FurnitureItem, 0, len(items))
	for _, it := range items {
		if it.Count > 0 {
			out = append(out, it)
		}
	}
	return out
}

func normalizeRoute(r *domain.RouteInfo) *domain.RouteInfo {
	if r == nil {
		return nil
	}
	out := *r
	out.IsLongDistance = out.Distance > types.LongDistanceMiles
	return &out
}

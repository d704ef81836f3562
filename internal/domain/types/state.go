package types

import "slices"

// MoveState is the root aggregate of one visitor's funnel session.
//
// Values reachable from a *MoveState handed out by the store are treated as
// immutable; every change produces a new MoveState that shares untouched
// collections with its predecessor.
type MoveState struct {
	CurrentStep    Step       `json:"currentStep"`
	CompletedSteps []Step     `json:"completedSteps"`
	Basics         MoveBasics `json:"basics"`

	Rooms        []Room              `json:"rooms"`
	SpecialItems []SpecialItem       `json:"specialItems"`
	Services     []AdditionalService `json:"services"`

	Estimate  *MoveEstimate `json:"estimate"`
	BoxCounts *BoxCounts    `json:"boxCounts"`

	ContactInfo        *ContactInfo       `json:"contactInfo"`
	ContactPreferences ContactPreferences `json:"contactPreferences"`

	SelectedMovers []string `json:"selectedMovers"`

	ExitIntentShown bool   `json:"exitIntentShown"`
	EmailCaptured   bool   `json:"emailCaptured"`
	CapturedEmail   string `json:"capturedEmail"`

	AIInsight *string `json:"aiInsight"`
}

// Clone returns a deep copy of s.
func (s *MoveState) Clone() *MoveState {
	if s == nil {
		return nil
	}
	out := *s
	out.CompletedSteps = slices.Clone(s.CompletedSteps)
	out.Basics = s.Basics.clone()

	out.Rooms = make([]Room, len(s.Rooms))
	for i, r := range s.Rooms {
		out.Rooms[i] = r.Clone()
	}
	out.SpecialItems = slices.Clone(s.SpecialItems)
	out.Services = make([]AdditionalService, len(s.Services))
	for i, svc := range s.Services {
		out.Services[i] = svc.Clone()
	}

	if s.Estimate != nil {
		e := *s.Estimate
		out.Estimate = &e
	}
	if s.BoxCounts != nil {
		b := *s.BoxCounts
		out.BoxCounts = &b
	}
	if s.ContactInfo != nil {
		c := *s.ContactInfo
		out.ContactInfo = &c
	}
	out.SelectedMovers = slices.Clone(s.SelectedMovers)
	if s.AIInsight != nil {
		v := *s.AIInsight
		out.AIInsight = &v
	}
	return &out
}

// HasCompleted reports whether step is in the completed set.
func (s *MoveState) HasCompleted(step Step) bool {
	return slices.Contains(s.CompletedSteps, step)
}

// Room returns the room with id, if any.
func (s *MoveState) Room(id string) (Room, bool) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

func (b MoveBasics) clone() MoveBasics {
	out := b
	if b.FromAddress != nil {
		a := *b.FromAddress
		out.FromAddress = &a
	}
	if b.ToAddress != nil {
		a := *b.ToAddress
		out.ToAddress = &a
	}
	if b.RouteInfo != nil {
		r := *b.RouteInfo
		out.RouteInfo = &r
	}
	return out
}

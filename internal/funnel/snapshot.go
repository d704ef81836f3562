package funnel

import (
	"encoding/json"
	"fmt"

	"movefunnel/internal/domain"
)

// MarshalSnapshot encodes s as a persistence snapshot.
func MarshalSnapshot(s *domain.MoveState) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return b, nil
}

// snapshotFields mirrors MoveState with one pointer per top-level field so
// absent and null keys can be told apart from zero values.
type snapshotFields struct {
	CurrentStep        *domain.Step                `json:"currentStep"`
	CompletedSteps     *[]domain.Step              `json:"completedSteps"`
	Basics             *domain.MoveBasics          `json:"basics"`
	Rooms              *[]domain.Room              `json:"rooms"`
	SpecialItems       *[]domain.SpecialItem       `json:"specialItems"`
	Services           *[]domain.AdditionalService `json:"services"`
	Estimate           *domain.MoveEstimate        `json:"estimate"`
	BoxCounts          *domain.BoxCounts           `json:"boxCounts"`
	ContactInfo        *domain.ContactInfo         `json:"contactInfo"`
	ContactPreferences *domain.ContactPreferences  `json:"contactPreferences"`
	SelectedMovers     *[]string                   `json:"selectedMovers"`
	ExitIntentShown    *bool                       `json:"exitIntentShown"`
	EmailCaptured      *bool                       `json:"emailCaptured"`
	CapturedEmail      *string                     `json:"capturedEmail"`
	AIInsight          *string                     `json:"aiInsight"`
}

// RestoreSnapshot decodes a snapshot over InitialState: keys missing from
// older snapshots keep their defaults. ok is false, and the initial state is
// returned, when data is empty or does not parse.
func RestoreSnapshot(data []byte) (s *domain.MoveState, ok bool) {
	s = InitialState()
	if len(data) == 0 {
		return s, false
	}
	var f snapshotFields
	if err := json.Unmarshal(data, &f); err != nil {
		return InitialState(), false
	}

	setIf(&s.CurrentStep, f.CurrentStep)
	setIf(&s.CompletedSteps, f.CompletedSteps)
	setIf(&s.Basics, f.Basics)
	setIf(&s.Rooms, f.Rooms)
	setIf(&s.SpecialItems, f.SpecialItems)
	setIf(&s.Services, f.Services)
	s.Estimate = f.Estimate
	s.BoxCounts = f.BoxCounts
	s.ContactInfo = f.ContactInfo
	setIf(&s.ContactPreferences, f.ContactPreferences)
	setIf(&s.SelectedMovers, f.SelectedMovers)
	setIf(&s.ExitIntentShown, f.ExitIntentShown)
	setIf(&s.EmailCaptured, f.EmailCaptured)
	setIf(&s.CapturedEmail, f.CapturedEmail)
	s.AIInsight = f.AIInsight
	return normalize(s), true
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

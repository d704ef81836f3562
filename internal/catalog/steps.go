package catalog

import (
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

// StepInfo is the progress-bar entry for one funnel step.
type StepInfo struct {
	Step     domain.Step `json:"step"`
	Progress int         `json:"progress"`
	Label    string      `json:"label"`
}

var steps = []StepInfo{
	{types.StepBasics, 15, "Your Rooms"},
	{types.StepInventory, 30, "Your Inventory"},
	{types.StepSpecialItems, 45, "Special Items"},
	{types.StepLocation, 60, "Your Route"},
	{types.StepServices, 75, "Services"},
	{types.StepSummary, 88, "Your Move Plan"},
	{types.StepContact, 96, "Get Quotes"},
	{types.StepQuotes, 100, "Your Quotes"},
}

// Steps returns the funnel steps in navigation order. Landing is not listed.
func Steps() []StepInfo {
	return append([]StepInfo(nil), steps...)
}

// StepFor looks up progress information for step.
func StepFor(step domain.Step) (StepInfo, bool) {
	for _, s := range steps {
		if s.Step == step {
			return s, true
		}
	}
	return StepInfo{}, false
}

// IsKnownStep reports whether step is landing or one of the funnel steps.
func IsKnownStep(step domain.Step) bool {
	if step == types.StepLanding {
		return true
	}
	_, ok := StepFor(step)
	return ok
}

// NextStep returns the step after step, if any.
func NextStep(step domain.Step) (domain.Step, bool) {
	if step == types.StepLanding {
		return steps[0].Step, true
	}
	for i, s := range steps {
		if s.Step == step && i+1 < len(steps) {
			return steps[i+1].Step, true
		}
	}
	return "", false
}

package engagement

import (
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
	"movefunnel/internal/funnel"
)

// ExitVariant groups steps that share an exit-intent prompt.
type ExitVariant string

const (
	ExitEarly ExitVariant = "early"
	ExitMid   ExitVariant = "mid"
	ExitLate  ExitVariant = "late"
)

// ExitPrompt is the dialog shown when a visitor is about to leave.
type ExitPrompt struct {
	Variant ExitVariant `json:"variant"`
	Title   string      `json:"title"`
	Body    string      `json:"body"`
	Action  string      `json:"action"`
	Dismiss string      `json:"dismiss"`
	// CaptureEmail is set when the prompt asks for an address.
	CaptureEmail bool `json:"captureEmail"`
}

var exitPrompts = map[ExitVariant]ExitPrompt{
	ExitEarly: {
		Variant:      ExitEarly,
		Title:        "Your move plan isn't saved yet",
		Body:         "Enter your email to save your move plan and continue later. You'll keep your inventory and estimates.",
		Action:       "Save Progress",
		Dismiss:      "No thanks, I'll start over",
		CaptureEmail: true,
	},
	ExitMid: {
		Variant: ExitMid,
		Title:   "You're almost done!",
		Body:    "Your move plan is nearly complete. Just a few more details and you'll have movers competing for your business.",
		Action:  "Continue Planning",
		Dismiss: "Save and exit",
	},
	ExitLate: {
		Variant: ExitLate,
		Title:   "4 movers are ready to compete for your move",
		Body:    "Just add your contact info to see their quotes. Your move plan is yours to keep regardless.",
		Action:  "See My Quotes",
		Dismiss: "No thanks, I'll explore on my own",
	},
}

// ExitVariantFor returns the prompt group for step. Steps before inventory
// and the location step have none.
func ExitVariantFor(step domain.Step) (ExitVariant, bool) {
	switch step {
	case types.StepInventory:
		return ExitEarly, true
	case types.StepSpecialItems, types.StepServices, types.StepSummary:
		return ExitMid, true
	case types.StepContact, types.StepQuotes:
		return ExitLate, true
	}
	return "", false
}

// ExitPromptFor returns the prompt a visitor on s's current step would see,
// or false when none applies: it was already shown, the step has no variant,
// or the visitor has reached the quotes.
func ExitPromptFor(s *domain.MoveState) (ExitPrompt, bool) {
	if s.ExitIntentShown || s.CurrentStep == types.StepQuotes {
		return ExitPrompt{}, false
	}
	v, ok := ExitVariantFor(s.CurrentStep)
	if !ok {
		return ExitPrompt{}, false
	}
	return exitPrompts[v], true
}

// TriggerExitIntent records that the exit prompt was shown and returns it.
// It returns false, and changes nothing, when no prompt applies.
func TriggerExitIntent(st *funnel.Store) (ExitPrompt, bool) {
	p, ok := ExitPromptFor(st.State())
	if !ok {
		return ExitPrompt{}, false
	}
	if !st.SetExitIntentShown().Changed() {
		return ExitPrompt{}, false
	}
	return p, true
}

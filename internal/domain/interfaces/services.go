package interfaces

import (
	"context"

	domaintypes "movefunnel/internal/domain/types"
)

// Completer sends one prompt to a language model and returns its text.
type Completer interface {
	Complete(ctx context.Context, req domaintypes.CompletionRequest) (string, error)
}

// AssistantService answers visitor questions about their move.
type AssistantService interface {
	Reply(ctx context.Context, req domaintypes.ChatRequest) (domaintypes.ChatReply, error)
}

// InsightService writes a short paragraph about a move plan.
type InsightService interface {
	Generate(ctx context.Context, req domaintypes.InsightRequest) domaintypes.InsightReply
}

// DocumentScanner extracts structured data from an uploaded document.
type DocumentScanner interface {
	Scan(ctx context.Context) (domaintypes.ExtractedDocument, error)
}

package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
	"movefunnel/internal/llm"
	"movefunnel/internal/observability"
)

const (
	defaultMaxTokens = 200
	defaultTimeout   = 15 * time.Second
)

// Options tunes a Service. Zero values take their defaults.
type Options struct {
	MaxTokens int
	Timeout   time.Duration
}

// Service generates move insights, falling back to templated text when the
// model is unavailable.
type Service struct {
	completer domain.Completer
	log       *observability.Logger
	metrics   *observability.Metrics
	maxTokens int
	timeout   time.Duration
}

// New constructs an insight Service. completer may be nil.
func New(completer domain.Completer, log *observability.Logger, metrics *observability.Metrics, opts Options) *Service {
	s := &Service{
		completer: completer,
		log:       observability.OrNop(log).Component("insight"),
		metrics:   metrics,
		maxTokens: opts.MaxTokens,
		timeout:   opts.Timeout,
	}
	if s.maxTokens <= 0 {
		s.maxTokens = defaultMaxTokens
	}
	if s.timeout <= 0 {
		s.timeout = defaultTimeout
	}
	return s
}

// Generate never fails; errors from the model are logged and replaced by
// Fallback.
func (s *Service) Generate(ctx context.Context, req domain.InsightRequest) domain.InsightReply {
	text, err := s.complete(ctx, req)
	if err == nil {
		s.metrics.RecordAIReply("insight", string(types.SourceLLM))
		return domain.InsightReply{Text: text, Source: types.SourceLLM}
	}

	log := s.log.WithContext(ctx)
	if errors.Is(err, llm.ErrNotConfigured) {
		log.Debug("llm not configured, using fallback")
	} else {
		log.Warn("insight completion failed, using fallback", "error", err)
	}
	s.metrics.RecordAIReply("insight", string(types.SourceFallback))
	return domain.InsightReply{Text: Fallback(req), Source: types.SourceFallback}
}

func (s *Service) complete(ctx context.Context, req domain.InsightRequest) (string, error) {
	if s.completer == nil {
		return "", llm.ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.completer.Complete(ctx, domain.CompletionRequest{
		Messages:  []domain.ChatMessage{{Role: types.RoleUser, Content: Prompt(req)}},
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("insight: %w", err)
	}
	return text, nil
}

// Summary renders the move profile shown to the model, one fact per line.
func Summary(req domain.InsightRequest) string {
	rooms := make([]string, len(req.Rooms))
	for i, r := range req.Rooms {
		rooms[i] = fmt.Sprintf("%s (%d items)", r.Name, r.FurnitureCount)
	}
	lines := []string{
		"Home size: " + req.HomeSize,
		"Rooms: " + strings.Join(rooms, ", "),
	}
	if len(req.SpecialItems) > 0 {
		lines = append(lines, "Special items: "+strings.Join(req.SpecialItems, ", "))
	}
	if len(req.Services) > 0 {
		lines = append(lines, "Services: "+strings.Join(req.Services, ", "))
	}
	return strings.Join(lines, "\n")
}

// Prompt is the user message for req. Anything other than a summary request
// asks for a tip.
func Prompt(req domain.InsightRequest) string {
	head := "Given this moving profile:\n" + Summary(req) + "\n\n"
	if req.Type == types.InsightSummary {
		return head + "Write 2-3 sentences of insight for someone planning this move. Focus on what makes " +
			"their move unique and one practical tip. Keep it conversational and helpful. No jargon. No markdown."
	}
	return head + "Write 2-3 sentences with a specific tip for their move. Be practical and actionable. " +
		"Keep it conversational. No markdown."
}

// Compile-time assertion that Service implements domain.InsightService.
var _ domain.InsightService = (*Service)(nil)

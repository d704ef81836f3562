package assistant

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
	defaultMaxTokens = 300
	defaultTimeout   = 15 * time.Second
)

type errString string

func (e errString) Error() string { return string(e) }

// ErrNoMessages is returned when a chat request carries no messages.
const ErrNoMessages errString = "No messages provided"

// Options tunes a Service. Zero values take their defaults.
type Options struct {
	MaxTokens int
	Timeout   time.Duration
}

// Service answers chat requests.
//
// For each request it:
//   - Builds a system prompt from the visitor's move details.
//   - Sends the conversation to the completer under a timeout.
//   - Falls back to a keyword answer when the completer fails.
type Service struct {
	completer domain.Completer
	log       *observability.Logger
	metrics   *observability.Metrics
	maxTokens int
	timeout   time.Duration
}

// New constructs an assistant Service. completer may be nil, in which case
// every reply is a fallback.
func New(completer domain.Completer, log *observability.Logger, metrics *observability.Metrics, opts Options) *Service {
	s := &Service{
		completer: completer,
		log:       observability.OrNop(log).Component("assistant"),
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

// Reply answers the last message of req.
func (s *Service) Reply(ctx context.Context, req domain.ChatRequest) (domain.ChatReply, error) {
	if len(req.Messages) == 0 {
		return domain.ChatReply{}, ErrNoMessages
	}

	text, err := s.complete(ctx, req)
	if err == nil {
		s.metrics.RecordAIReply("chat", string(types.SourceLLM))
		return domain.ChatReply{Text: text, Source: types.SourceLLM}, nil
	}

	log := s.log.WithContext(ctx)
	if errors.Is(err, llm.ErrNotConfigured) {
		log.Debug("llm not configured, using fallback")
	} else {
		log.Warn("chat completion failed, using fallback", "error", err)
	}
	s.metrics.RecordAIReply("chat", string(types.SourceFallback))
	last := req.Messages[len(req.Messages)-1].Content
	return domain.ChatReply{Text: Fallback(last), Source: types.SourceFallback}, nil
}

func (s *Service) complete(ctx context.Context, req domain.ChatRequest) (string, error) {
	if s.completer == nil {
		return "", llm.ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.completer.Complete(ctx, domain.CompletionRequest{
		System:    SystemPrompt(req.Context),
		Messages:  req.Messages,
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("assistant: %w", err)
	}
	return text, nil
}

// ContextLine summarises the move details known so far, e.g.
// "Moving from Austin to Denver, Home size: 2br, 42 furniture items".
func ContextLine(c domain.ChatContext) string {
	var parts []string
	if c.FromCity != "" && c.ToCity != "" {
		parts = append(parts, fmt.Sprintf("Moving from %s to %s", c.FromCity, c.ToCity))
	}
	if c.HomeSize != "" {
		parts = append(parts, "Home size: "+c.HomeSize)
	}
	if c.TotalItems > 0 {
		parts = append(parts, fmt.Sprintf("%d furniture items", c.TotalItems))
	}
	if c.SpecialItemsCount > 0 {
		parts = append(parts, fmt.Sprintf("%d special items", c.SpecialItemsCount))
	}
	if c.MoveDate != "" {
		parts = append(parts, "Move date: "+c.MoveDate)
	}
	return strings.Join(parts, ", ")
}

// SystemPrompt is the instruction sent ahead of the conversation.
func SystemPrompt(c domain.ChatContext) string {
	var details string
	if line := ContextLine(c); line != "" {
		details = "The user's move details: " + line + "."
	}
	return "You are a helpful moving assistant on a moving comparison website. " + details +
		"\n\nBe helpful, friendly, and concise (2-4 sentences max). You can explain moving best practices, " +
		"tips, and general pricing guidance but cannot guarantee specific rates. If asked about specific " +
		"movers, say we'll show matched options after they complete their profile. Provide practical " +
		"moving advice. Do not use markdown formatting."
}

// Compile-time assertion that Service implements domain.AssistantService.
var _ domain.AssistantService = (*Service)(nil)

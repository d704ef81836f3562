package scan

import (
	"context"
	"math/rand/v2"
	"time"

	"movefunnel/internal/domain"
)

// DefaultDelay is how long a scan takes when no delay is configured.
const DefaultDelay = 2 * time.Second

var samples = []domain.ExtractedDocument{
	{Creditor: "Chase Sapphire", Balance: 8450, InterestRate: 24.99, MinimumPayment: 253},
	{Creditor: "Capital One Quicksilver", Balance: 4200, InterestRate: 26.99, MinimumPayment: 126},
	{Creditor: "Discover It", Balance: 6800, InterestRate: 22.49, MinimumPayment: 204},
	{Creditor: "Citi Double Cash", Balance: 3100, InterestRate: 20.74, MinimumPayment: 93},
}

// Samples returns the statements a scan can produce.
func Samples() []domain.ExtractedDocument {
	return append([]domain.ExtractedDocument(nil), samples...)
}

// Service simulates document extraction.
type Service struct {
	delay time.Duration
	pick  func(n int) int
}

// Option configures a Service.
type Option func(*Service)

// WithPicker replaces the random sample choice. pick receives the number of
// samples and returns an index.
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) { s.pick = pick }
}

// New returns a scanner that waits delay before answering. A negative delay
// means DefaultDelay; zero answers immediately.
func New(delay time.Duration, opts ...Option) *Service {
	if delay < 0 {
		delay = DefaultDelay
	}
	s := &Service{delay: delay, pick: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan waits out the processing delay and returns a sample statement. It
// returns ctx.Err() if ctx ends first.
func (s *Service) Scan(ctx context.Context) (domain.ExtractedDocument, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return domain.ExtractedDocument{}, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return domain.ExtractedDocument{}, err
	}
	return samples[s.pick(len(samples))], nil
}

// Compile-time assertion that Service implements domain.DocumentScanner.
var _ domain.DocumentScanner = (*Service)(nil)

package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"movefunnel/internal/domain"
	"movefunnel/internal/llm"
	"movefunnel/internal/observability"
	"movefunnel/internal/services/assistant"
	"movefunnel/internal/services/engagement"
	"movefunnel/internal/services/insight"
	"movefunnel/internal/services/scan"
	"movefunnel/internal/services/session"
	"movefunnel/internal/store"
	"movefunnel/internal/store/sqlite"
)

// Wire bundles all stores, services and clients for the server and CLI.
type Wire struct {
	Config    Config
	Log       *observability.Logger
	Metrics   *observability.Metrics
	Snapshots domain.SnapshotStore
	LLM       *llm.Client
	Sessions  *session.Manager
	Assistant domain.AssistantService
	Insight   domain.InsightService
	Scanner   domain.DocumentScanner
	Ticker    *engagement.Ticker

	closers []func() error
}

// WireOption adjusts NewWire.
type WireOption func(*wireOptions)

type wireOptions struct {
	logOutput io.Writer
}

// WithLogOutput sends logs to w instead of stderr.
func WithLogOutput(w io.Writer) WireOption {
	return func(o *wireOptions) { o.logOutput = w }
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, opts ...WireOption) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := wireOptions{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	log := observability.NewLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: o.logOutput,
	})
	metrics := observability.NewMetrics()

	// Snapshot storage
	snapshots, closeSnapshots, err := OpenSnapshotStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	w := &Wire{Config: cfg, Log: log, Metrics: metrics, Snapshots: snapshots}
	w.closers = append(w.closers, closeSnapshots)

	// Language model, shared by chat and insights
	w.LLM = llm.New(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if !w.LLM.Configured() {
		log.Info("no llm api key configured; chat and insights use local fallbacks")
	}

	// High-level services
	w.Assistant = assistant.New(w.LLM, log, metrics, assistant.Options{
		MaxTokens: cfg.LLM.ChatMaxTokens,
		Timeout:   cfg.LLM.Timeout,
	})
	w.Insight = insight.New(w.LLM, log, metrics, insight.Options{
		MaxTokens: cfg.LLM.InsightMaxTokens,
		Timeout:   cfg.LLM.Timeout,
	})
	w.Scanner = scan.New(cfg.Scan.Delay)
	w.Ticker = engagement.NewTicker(nil)

	sessions, err := session.NewManager(snapshots, log, metrics, cfg.Sessions.MaxSessions)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	w.Sessions = sessions
	// Sessions flush into the snapshot store, so they close first.
	w.closers = append([]func() error{sessions.Close}, w.closers...)

	return w, nil
}

// Close flushes sessions and releases storage.
func (w *Wire) Close() error {
	var errs []error
	for _, c := range w.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	w.closers = nil
	return errors.Join(errs...)
}

// OpenSnapshotStore opens the snapshot store cfg selects, sealed with the
// passphrase when one is set. The returned func releases it.
func OpenSnapshotStore(cfg StorageConfig) (domain.SnapshotStore, func() error, error) {
	var (
		inner   domain.SnapshotStore
		closeFn = func() error { return nil }
	)
	switch cfg.Driver {
	case DriverFile:
		fs, err := store.NewFileStore(cfg.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file store: %w", err)
		}
		inner = fs
	case DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		inner, closeFn = db, db.Close
	case DriverMemory:
		inner = store.NewMemoryStore()
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	if cfg.Passphrase == "" {
		return inner, closeFn, nil
	}
	sealed, err := store.NewSealedStore(inner, cfg.Passphrase)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return sealed, closeFn, nil
}

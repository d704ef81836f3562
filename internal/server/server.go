package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"movefunnel/internal/domain"
	"movefunnel/internal/observability"
	"movefunnel/internal/services/engagement"
	"movefunnel/internal/services/session"
)

const shutdownTimeout = 10 * time.Second

// Config configures the HTTP listener.
type Config struct {
	Addr         string
	CORSOrigins  []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Deps are the services the handlers call. Log, Metrics and Now may be nil.
type Deps struct {
	Sessions  *session.Manager
	Assistant domain.AssistantService
	Insight   domain.InsightService
	Scanner   domain.DocumentScanner
	Ticker    *engagement.Ticker
	Log       *observability.Logger
	Metrics   *observability.Metrics
	Now       func() time.Time
}

// Server is the funnel HTTP API.
type Server struct {
	cfg    Config
	deps   Deps
	log    *observability.Logger
	engine *gin.Engine
}

// New builds the router.
func New(cfg Config, deps Deps) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Ticker == nil {
		deps.Ticker = engagement.NewTicker(nil)
	}

	s := &Server{
		cfg:    cfg,
		deps:   deps,
		log:    observability.OrNop(deps.Log).Component("http"),
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.observe())
	s.engine.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	s.setupRoutes()
	return s
}

func corsConfig(origins []string) cors.Config {
	cc := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	cc.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	cc.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cc
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) { ok(c, gin.H{"status": "ok"}) })
	if s.deps.Metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.deps.Metrics.Handler()))
	}

	api := s.engine.Group("/api")
	{
		api.POST("/chat", s.handleChat)
		api.POST("/generate-insight", s.handleGenerateInsight)
		api.POST("/scan-document", s.handleScanDocument)
		api.GET("/catalog", s.handleCatalog)
		api.GET("/ticker", s.handleTicker)
	}

	api.POST("/sessions", s.handleCreateSession)
	sessions := api.Group("/sessions/:id", s.loadSession)
	{
		sessions.GET("", s.handleGetSession)
		sessions.DELETE("", s.handleResetSession)
		sessions.POST("/actions", s.handleDispatch)
		sessions.GET("/estimate", s.handleEstimate)
		sessions.GET("/quote", s.handleQuote)
		sessions.GET("/movers", s.handleMovers)
		sessions.GET("/engagement", s.handleEngagement)
		sessions.POST("/insight", s.handleSessionInsight)
	}

	flow := sessions.Group("/flow")
	{
		flow.POST("/rooms", s.handleChooseRooms)
		flow.POST("/rooms/custom", s.handleAddCustomRoom)
		flow.POST("/furniture", s.handleEditFurniture)
		flow.POST("/furniture/adjust", s.handleAdjustFurniture)
		flow.POST("/select-room", s.handleSelectRoom)
		flow.POST("/finish-inventory", s.handleFinishInventory)
		flow.POST("/special-items/adjust", s.handleAdjustSpecialItem)
		flow.POST("/summary", s.handleSummary)
		flow.POST("/contact", s.handleSubmitContact)
		flow.POST("/email", s.handleCaptureEmail)
		flow.POST("/advance", s.handleAdvance)
		flow.POST("/exit-intent", s.handleExitIntent)
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"movefunnel/internal/catalog"
	"movefunnel/internal/estimate"
	"movefunnel/internal/funnel"
	"movefunnel/internal/services/engagement"
	"movefunnel/internal/services/insight"
)

func (s *Server) handleCreateSession(c *gin.Context) {
	sess, err := s.deps.Sessions.Create(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		failErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "sessionId": sess.ID, "state": sess.Store.State()})
}

func (s *Server) handleGetSession(c *gin.Context) {
	sess := currentSession(c)
	ok(c, gin.H{"sessionId": sess.ID, "state": sess.Store.State()})
}

func (s *Server) handleResetSession(c *gin.Context) {
	sess, err := s.deps.Sessions.Reset(c.Request.Context(), currentSession(c).ID)
	if err != nil {
		_ = c.Error(err)
		failErr(c, err)
		return
	}
	ok(c, gin.H{"sessionId": sess.ID, "state": sess.Store.State()})
}

// maxActionBytes bounds a raw action body. A HYDRATE carries a whole state.
const maxActionBytes = 1 << 20

// handleDispatch applies one raw action, e.g. {"type":"TOGGLE_MOVER","moverId":"allied"}.
func (s *Server) handleDispatch(c *gin.Context) {
	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxActionBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		fail(c, http.StatusRequestEntityTooLarge, CodeInvalidInput, "Action body too large")
		return
	}
	if err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidInput, "Unreadable body")
		return
	}
	action, err := funnel.DecodeAction(data)
	if errors.Is(err, funnel.ErrUnknownAction) {
		failErr(c, err)
		return
	}
	if err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}
	change := currentSession(c).Store.Dispatch(action)
	ok(c, gin.H{"changed": change.Changed(), "state": change.Next})
}

// handleEstimate prices the session with the requested phase, or the phase
// its current step uses.
func (s *Server) handleEstimate(c *gin.Context) {
	state := currentSession(c).Store.State()
	phase := estimate.PhaseForStep(state.CurrentStep)
	if q := c.Query("phase"); q != "" {
		p, valid := estimate.ParsePhase(q)
		if !valid {
			fail(c, http.StatusBadRequest, CodeInvalidInput, "phase must be preset or granular")
			return
		}
		phase = p
	}
	est := estimate.Generate(state, phase)
	ok(c, gin.H{
		"phase":    phase,
		"estimate": est,
		"formatted": gin.H{
			"min":   estimate.FormatCurrency(est.CostRange.Min),
			"max":   estimate.FormatCurrency(est.CostRange.Max),
			"total": estimate.FormatCurrencyPrecise(est.CostBreakdown.Total),
		},
	})
}

// handleQuote returns the running price band and mover count for the
// current step.
func (s *Server) handleQuote(c *gin.Context) {
	state := currentSession(c).Store.State()
	step := state.CurrentStep
	quote := estimate.RunningQuote(state, step)
	boxes := 0
	if state.BoxCounts != nil {
		boxes = state.BoxCounts.Total
	}
	home, minBoxes, maxBoxes := estimate.HomeDescription(len(state.Rooms), boxes)
	ok(c, gin.H{
		"step":       step,
		"range":      quote,
		"formatted":  gin.H{"min": estimate.FormatCurrency(quote.Min), "max": estimate.FormatCurrency(quote.Max)},
		"moverCount": estimate.MoverCount(state, step),
		"home":       gin.H{"description": home, "minBoxes": minBoxes, "maxBoxes": maxBoxes},
	})
}

func (s *Server) handleMovers(c *gin.Context) {
	state := currentSession(c).Store.State()
	ok(c, gin.H{
		"movers":   estimate.MoverQuotes(catalog.Movers(), state.Estimate),
		"selected": state.SelectedMovers,
	})
}

// handleEngagement returns the tracker status and drains pending
// celebrations.
func (s *Server) handleEngagement(c *gin.Context) {
	sess := currentSession(c)
	state := sess.Store.State()
	body := gin.H{
		"status": sess.Tracker.Status(),
		"events": sess.Tracker.Drain(),
	}
	if p, found := engagement.ExitPromptFor(state); found {
		body["exitIntent"] = p
	}
	if b, found := engagement.UrgencyBanner(state, s.deps.Now()); found {
		body["banner"] = b
	}
	ok(c, body)
}

type sessionInsightRequest struct {
	Type string `json:"type"`
}

// handleSessionInsight generates an insight from the session's own state and
// stores it.
func (s *Server) handleSessionInsight(c *gin.Context) {
	var req sessionInsightRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
			return
		}
	}
	sess := currentSession(c)
	ir := insight.RequestFromState(sess.Store.State(), insightKind(req.Type))
	reply := s.deps.Insight.Generate(c.Request.Context(), ir)
	change := sess.Store.SetAIInsight(reply.Text)
	ok(c, gin.H{"insight": reply.Text, "state": change.Next})
}

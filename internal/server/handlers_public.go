package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"movefunnel/internal/catalog"
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
	"movefunnel/internal/services/assistant"
	"movefunnel/internal/services/engagement"
)

func (s *Server) handleChat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, CodeServerError, "Chat failed")
		return
	}
	reply, err := s.deps.Assistant.Reply(c.Request.Context(), req)
	if errors.Is(err, assistant.ErrNoMessages) {
		fail(c, http.StatusBadRequest, CodeInvalidInput, "No messages provided")
		return
	}
	if err != nil {
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, CodeServerError, "Chat failed")
		return
	}
	ok(c, gin.H{"response": reply.Text})
}

func (s *Server) handleGenerateInsight(c *gin.Context) {
	var req domain.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, CodeServerError, "Failed to generate insight")
		return
	}
	reply := s.deps.Insight.Generate(c.Request.Context(), req)
	ok(c, gin.H{"insight": reply.Text})
}

func (s *Server) handleScanDocument(c *gin.Context) {
	doc, err := s.deps.Scanner.Scan(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			fail(c, http.StatusGatewayTimeout, CodeTimeout, "Scan cancelled")
			return
		}
		fail(c, http.StatusInternalServerError, CodeServerError, "Scan failed")
		return
	}
	ok(c, gin.H{"data": gin.H{"extractedData": doc}})
}

func (s *Server) handleCatalog(c *gin.Context) {
	ok(c, gin.H{
		"homeSizes":     catalog.HomeSizes(),
		"roomTemplates": catalog.RoomTemplates(),
		"furniture":     catalog.FurnitureByRoom(),
		"specialItems":  catalog.SpecialItems(),
		"services":      catalog.Services(),
		"steps":         catalog.Steps(),
		"movers":        catalog.Movers(),
		"achievements":  engagement.Achievements(),
	})
}

func (s *Server) handleTicker(c *gin.Context) {
	now := s.deps.Now()
	body := gin.H{
		"message":    s.deps.Ticker.Message(),
		"todayCount": s.deps.Ticker.TodayCount(),
		"today":      engagement.TodayFormatted(now),
	}
	if b, found := engagement.SeasonalBanner(now); found {
		body["banner"] = b
	}
	ok(c, body)
}

// insightKind reads the optional kind of an insight request; anything
// unrecognised means a summary.
func insightKind(kind string) types.InsightKind {
	if types.InsightKind(kind) == types.InsightTips {
		return types.InsightTips
	}
	return types.InsightSummary
}

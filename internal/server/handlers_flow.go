package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movefunnel/internal/domain"
	"movefunnel/internal/services/engagement"
)

// bind decodes the JSON body into req, replying 400 on failure.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(err)
		fail(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return false
	}
	return true
}

// reply writes the state returned by a step controller, or maps its error.
func reply(c *gin.Context, state *domain.MoveState, err error, extra gin.H) {
	if err != nil {
		_ = c.Error(err)
		failErr(c, err)
		return
	}
	if extra == nil {
		extra = gin.H{}
	}
	extra["state"] = state
	ok(c, extra)
}

type chooseRoomsRequest struct {
	Counts map[domain.RoomType]int `json:"counts" binding:"required"`
	Boxes  *domain.BoxCounts       `json:"boxes"`
}

func (s *Server) handleChooseRooms(c *gin.Context) {
	var req chooseRoomsRequest
	if !bind(c, &req) {
		return
	}
	state, err := currentSession(c).Flow.ChooseRooms(req.Counts, req.Boxes)
	reply(c, state, err, nil)
}

type customRoomRequest struct {
	Type domain.RoomType `json:"type" binding:"required"`
	Name string          `json:"name"`
}

func (s *Server) handleAddCustomRoom(c *gin.Context) {
	var req customRoomRequest
	if !bind(c, &req) {
		return
	}
	sess := currentSession(c)
	room, err := sess.Flow.AddCustomRoom(req.Type, req.Name)
	reply(c, sess.Store.State(), err, gin.H{"room": room})
}

type editFurnitureRequest struct {
	RoomID    string                 `json:"roomId" binding:"required"`
	Furniture []domain.FurnitureItem `json:"furniture"`
}

func (s *Server) handleEditFurniture(c *gin.Context) {
	var req editFurnitureRequest
	if !bind(c, &req) {
		return
	}
	state, err := currentSession(c).Flow.EditFurniture(req.RoomID, req.Furniture)
	reply(c, state, err, nil)
}

type adjustFurnitureRequest struct {
	RoomID string `json:"roomId" binding:"required"`
	ItemID string `json:"itemId" binding:"required"`
	Delta  int    `json:"delta" binding:"required"`
}

func (s *Server) handleAdjustFurniture(c *gin.Context) {
	var req adjustFurnitureRequest
	if !bind(c, &req) {
		return
	}
	state, err := currentSession(c).Flow.AdjustFurniture(req.RoomID, req.ItemID, req.Delta)
	reply(c, state, err, nil)
}

type selectRoomRequest struct {
	FromRoomID string `json:"fromRoomId"`
	ToRoomID   string `json:"toRoomId" binding:"required"`
}

func (s *Server) handleSelectRoom(c *gin.Context) {
	var req selectRoomRequest
	if !bind(c, &req) {
		return
	}
	state, err := currentSession(c).Flow.SelectRoom(req.FromRoomID, req.ToRoomID)
	reply(c, state, err, nil)
}

type finishInventoryRequest struct {
	CurrentRoomID string `json:"currentRoomId"`
}

func (s *Server) handleFinishInventory(c *gin.Context) {
	var req finishInventoryRequest
	if c.Request.ContentLength != 0 && !bind(c, &req) {
		return
	}
	state, err := currentSession(c).Flow.FinishInventory(req.CurrentRoomID)
	reply(c, state, err, nil)
}

type adjustSpecialItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
	Delta  int    `json:"delta" binding:"required"`
}

func (s *Server) handleAdjustSpecialItem(c *gin.Context) {
	var req adjustSpecialItemRequest
	if !bind(c, &req) {
		return
	}
	state, err := currentSession(c).Flow.AdjustSpecialItem(req.ItemID, req.Delta)
	reply(c, state, err, nil)
}

func (s *Server) handleSummary(c *gin.Context) {
	sess := currentSession(c)
	est := sess.Flow.Summarize()
	reply(c, sess.Store.State(), nil, gin.H{"estimate": est})
}

type contactRequest struct {
	Info  domain.ContactInfo             `json:"info"`
	Prefs domain.ContactPreferencesPatch `json:"prefs"`
}

func (s *Server) handleSubmitContact(c *gin.Context) {
	var req contactRequest
	if !bind(c, &req) {
		return
	}
	state, err := currentSession(c).Flow.SubmitContact(req.Info, req.Prefs)
	reply(c, state, err, nil)
}

type emailRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleCaptureEmail(c *gin.Context) {
	var req emailRequest
	if !bind(c, &req) {
		return
	}
	state, err := currentSession(c).Flow.CaptureEmail(req.Email)
	reply(c, state, err, nil)
}

type advanceRequest struct {
	Step domain.Step `json:"step" binding:"required"`
}

func (s *Server) handleAdvance(c *gin.Context) {
	var req advanceRequest
	if !bind(c, &req) {
		return
	}
	state, err := currentSession(c).Flow.Advance(req.Step)
	reply(c, state, err, nil)
}

// handleExitIntent shows the exit prompt at most once per session.
func (s *Server) handleExitIntent(c *gin.Context) {
	sess := currentSession(c)
	prompt, shown := engagement.TriggerExitIntent(sess.Store)
	body := gin.H{"shown": shown}
	if shown {
		body["prompt"] = prompt
	}
	reply(c, sess.Store.State(), nil, body)
}

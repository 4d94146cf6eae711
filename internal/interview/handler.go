package interview

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the interview service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/start", h.start)
	rg.POST("/answer", h.answer)
	rg.GET("/sessions/:id/transcript", h.transcript)
}

func (h *Handler) start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name, position, grade and experience are required", nil)
		return
	}

	session, result, err := h.Svc.Start(c.Request.Context(), Profile{
		Name:       req.Name,
		Position:   req.Position,
		Grade:      req.Grade,
		Experience: req.Experience,
	})
	if err != nil {
		if errors.Is(err, ErrOracle) {
			respond.Error(c, http.StatusBadGateway, "oracle_error", "failed to generate the first question", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start interview", nil)
		return
	}

	c.Set("sessionId", session.ID)
	c.Set("turnId", result.TurnID)

	respond.OK(c, StartResponse{
		SessionID: session.ID,
		Question:  result.Question,
		TurnID:    result.TurnID,
	})
}

func (h *Handler) answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "session_id and answer are required", nil)
		return
	}

	c.Set("sessionId", req.SessionID)

	result, err := h.Svc.SubmitAnswer(c.Request.Context(), req.SessionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		case errors.Is(err, ErrFinished):
			respond.Error(c, http.StatusConflict, "interview_finished", "interview already finished", nil)
		case errors.Is(err, ErrNoPending):
			respond.Error(c, http.StatusConflict, "no_pending_question", "no question is awaiting an answer", nil)
		case errors.Is(err, ErrOracle):
			respond.Error(c, http.StatusBadGateway, "oracle_error", "failed to process the answer", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process the answer", nil)
		}
		return
	}

	c.Set("turnId", result.TurnID)
	c.Set("finished", result.Finished)

	if result.Finished {
		respond.OK(c, FinishedResponse{
			Finished:        true,
			LogFile:         result.LogRef,
			Verdict:         result.Report.Verdict,
			Recommendation:  result.Report.Recommendation,
			ConfidenceScore: result.Report.ConfidenceScore,
			HardSkills:      result.Report.HardSkills,
			SoftSkills:      result.Report.SoftSkills,
			Roadmap:         result.Report.Roadmap,
		})
		return
	}

	respond.OK(c, NextQuestionResponse{
		Finished: false,
		Question: result.Question,
		TurnID:   result.TurnID,
	})
}

func (h *Handler) transcript(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "session id is required", nil)
		return
	}

	c.Set("sessionId", sessionID)

	transcript, err := h.Svc.Transcript(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch transcript", nil)
		return
	}

	respond.OK(c, transcript)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbridge/recruitment-backend/internal/auth"
	"github.com/talentbridge/recruitment-backend/internal/dtos"
	"github.com/talentbridge/recruitment-backend/internal/respond"
	"github.com/talentbridge/recruitment-backend/internal/services"
)

type InterviewHandler struct {
	interviews *services.InterviewService
}

func NewInterviewHandler(interviews *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

func (h *InterviewHandler) Create(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	var req dtos.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindErr(c, err)
		return
	}
	result, err := h.interviews.Create(c.Request.Context(), caller, services.CreateInterviewInput{
		ApplicationID: req.ApplicationID,
		ScheduledAt:   req.ScheduledAt,
		Method:        req.Method,
		Location:      req.Location,
		Notes:         req.Notes,
	})
	if err != nil {
		respond.Err(c, err)
		return
	}
	message := "interview scheduled"
	if !result.Notified {
		message = "interview scheduled, notification delivery failed"
	}
	respond.OK(c, http.StatusCreated, message, gin.H{
		"interview": result.Interview,
		"notified":  result.Notified,
	})
}

func (h *InterviewHandler) List(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	items, err := h.interviews.List(c.Request.Context(), caller)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "interviews listed", items)
}

func (h *InterviewHandler) Update(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindErr(c, err)
		return
	}
	iv, err := h.interviews.Update(c.Request.Context(), caller, id, services.UpdateInterviewInput{
		ScheduledAt: req.ScheduledAt,
		Method:      req.Method,
		Location:    req.Location,
		Notes:       req.Notes,
		Status:      req.Status,
	})
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "interview updated", iv)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.interviews.Delete(c.Request.Context(), caller, id); err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "interview deleted", nil)
}

func (h *InterviewHandler) Stats(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	stats, err := h.interviews.Stats(c.Request.Context(), caller, uintQuery(c, "interviewer_id"))
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "interview stats", stats)
}

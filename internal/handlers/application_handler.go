package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbridge/recruitment-backend/internal/auth"
	"github.com/talentbridge/recruitment-backend/internal/dtos"
	"github.com/talentbridge/recruitment-backend/internal/respond"
	"github.com/talentbridge/recruitment-backend/internal/services"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	var req dtos.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindErr(c, err)
		return
	}
	app, err := h.applications.Submit(c.Request.Context(), caller, req.JobID, req.Resume)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusCreated, "application submitted", app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	apps, err := h.applications.List(c.Request.Context(), caller, uintQuery(c, "employer_id"))
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "applications listed", apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	app, err := h.applications.Get(c.Request.Context(), caller, id)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "application found", app)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindErr(c, err)
		return
	}
	app, err := h.applications.UpdateStatus(c.Request.Context(), caller, id, req.Status)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "application status updated", app)
}

func (h *ApplicationHandler) CountByJob(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	jobID, ok := idParam(c, "id")
	if !ok {
		return
	}
	count, err := h.applications.CountByJob(c.Request.Context(), caller, jobID, c.Query("status"))
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "applications counted", gin.H{"job_id": jobID, "count": count})
}

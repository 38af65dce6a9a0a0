package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbridge/recruitment-backend/internal/auth"
	"github.com/talentbridge/recruitment-backend/internal/dtos"
	"github.com/talentbridge/recruitment-backend/internal/respond"
	"github.com/talentbridge/recruitment-backend/internal/services"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func jobFieldsFromRequest(req dtos.JobRequest) services.JobFields {
	positions := req.Positions
	if positions == 0 {
		positions = 1
	}
	return services.JobFields{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Benefits:        req.Benefits,
		Location:        req.Location,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Positions:       positions,
		Deadline:        req.Deadline,
		ContactInfo:     req.ContactInfo,
	}
}

// ListPublic is the unauthenticated listing: published postings only.
func (h *JobHandler) ListPublic(c *gin.Context) {
	limit := intQuery(c, "limit", 20)
	offset := intQuery(c, "offset", 0)
	jobs, err := h.jobs.ListPublic(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "jobs listed", jobs)
}

func (h *JobHandler) GetPublic(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	job, err := h.jobs.GetPublic(c.Request.Context(), id)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "job found", job)
}

func (h *JobHandler) Create(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindErr(c, err)
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), caller, jobFieldsFromRequest(req))
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusCreated, "job created", job)
}

func (h *JobHandler) Edit(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindErr(c, err)
		return
	}
	job, err := h.jobs.Edit(c.Request.Context(), caller, id, jobFieldsFromRequest(req))
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "job updated", job)
}

func (h *JobHandler) SubmitForApproval(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	job, err := h.jobs.SubmitForApproval(c.Request.Context(), caller, id)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "job submitted for approval", job)
}

func (h *JobHandler) Approve(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	job, err := h.jobs.Approve(c.Request.Context(), caller, id)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "job approved", job)
}

func (h *JobHandler) Reject(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.RejectJobRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respond.BindErr(c, err)
		return
	}
	job, err := h.jobs.Reject(c.Request.Context(), caller, id, req.Reason)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "job rejected", job)
}

func (h *JobHandler) Close(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	job, err := h.jobs.Close(c.Request.Context(), caller, id)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "job closed", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.jobs.Delete(c.Request.Context(), caller, id); err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "job deleted", nil)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	jobs, err := h.jobs.ListMine(c.Request.Context(), caller)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "jobs listed", jobs)
}

func (h *JobHandler) PendingQueue(c *gin.Context) {
	caller, _ := auth.IdentityFrom(c)
	jobs, err := h.jobs.PendingQueue(c.Request.Context(), caller)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "pending jobs listed", jobs)
}

package dtos

type SubmitApplicationRequest struct {
	JobID uint `json:"job_id" binding:"required"`
	// Resume is optional; when absent the candidate's default resume
	// reference is used.
	Resume string `json:"resume"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package dtos

import "time"

type CreateInterviewRequest struct {
	ApplicationID uint      `json:"application_id" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	Method        string    `json:"method" binding:"required"`
	Location      string    `json:"location" binding:"required"`
	Notes         string    `json:"notes"`
}

type UpdateInterviewRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Method      *string    `json:"method"`
	Location    *string    `json:"location"`
	Notes       *string    `json:"notes"`
	Status      *string    `json:"status"`
}

package dtos

import "time"

type JobRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	Requirements    string     `json:"requirements"`
	Benefits        string     `json:"benefits"`
	Location        string     `json:"location"`
	EmploymentType  string     `json:"employment_type"`
	ExperienceLevel string     `json:"experience_level"`
	SalaryMin       *int       `json:"salary_min"`
	SalaryMax       *int       `json:"salary_max"`
	Positions       int        `json:"positions" binding:"omitempty,min=1"`
	Deadline        *time.Time `json:"deadline"`
	ContactInfo     string     `json:"contact_info"`
}

type RejectJobRequest struct {
	Reason string `json:"reason"`
}

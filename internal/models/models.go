package models

import (
	"time"

	"gorm.io/gorm"
)

// Status codes are stored exactly as they appear on the wire. Job codes are
// uppercase, application and interview codes lowercase; the mismatch is
// load-bearing for existing clients and must not be normalized in storage.

type JobStatus string

const (
	JobDraft     JobStatus = "DRAFT"
	JobPending   JobStatus = "PENDING"
	JobRejected  JobStatus = "REJECTED"
	JobPublished JobStatus = "PUBLISHED"
	JobClosed    JobStatus = "CLOSED"
)

type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

type InterviewStatus string

const (
	InterviewPending   InterviewStatus = "pending"
	InterviewConfirmed InterviewStatus = "confirmed"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCanceled  InterviewStatus = "canceled"
)

type InterviewMethod string

const (
	MethodRemoteVideo InterviewMethod = "remote-video"
	MethodOnSite      InterviewMethod = "on-site"
)

type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleHR        Role = "HR"
	RoleTPNS      Role = "TPNS"
)

type Employer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName     string `gorm:"not null" json:"full_name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Role         Role   `gorm:"not null" json:"role"`
	PasswordHash string `gorm:"not null" json:"-"`
}

type Candidate struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName     string `gorm:"not null" json:"full_name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"uniqueIndex;not null" json:"phone"`
	PasswordHash string `gorm:"not null" json:"-"`

	// DefaultResume is an opaque reference into the external file store.
	// Applications fall back to it when no resume is supplied at submission.
	DefaultResume string `json:"default_resume,omitempty"`
}

type JobPosting struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// EmployerID never changes after creation.
	EmployerID uint     `gorm:"not null;index" json:"employer_id"`
	Employer   Employer `json:"-"`

	Title           string `gorm:"not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	Requirements    string `gorm:"type:text" json:"requirements"`
	Benefits        string `gorm:"type:text" json:"benefits"`
	Location        string `json:"location"`
	EmploymentType  string `json:"employment_type"`
	ExperienceLevel string `json:"experience_level"`

	SalaryMin *int `json:"salary_min,omitempty"`
	SalaryMax *int `json:"salary_max,omitempty"`

	Positions   int        `gorm:"default:1" json:"positions"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	ContactInfo string     `json:"contact_info"`

	Status       JobStatus `gorm:"type:varchar(16);default:'DRAFT';index" json:"status"`
	RejectReason string    `gorm:"type:text" json:"reject_reason,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"submitted_at"`

	// The composite unique index is the authoritative guard against
	// duplicate submissions; the service-level lookup is only a fast path.
	JobID       uint       `gorm:"not null;uniqueIndex:idx_candidate_job" json:"job_id"`
	Job         JobPosting `json:"job,omitempty"`
	CandidateID uint       `gorm:"not null;uniqueIndex:idx_candidate_job" json:"candidate_id"`
	Candidate   Candidate  `json:"candidate,omitempty"`

	Resume string            `gorm:"not null" json:"resume"`
	Status ApplicationStatus `gorm:"type:varchar(16);default:'submitted';index" json:"status"`
}

type Interview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ApplicationID uint        `gorm:"not null;index" json:"application_id"`
	Application   Application `json:"application,omitempty"`

	// InterviewerID is the employer who created the interview; updates and
	// deletes are gated on it.
	InterviewerID uint `gorm:"not null;index" json:"interviewer_id"`

	ScheduledAt time.Time       `gorm:"not null" json:"scheduled_at"`
	Method      InterviewMethod `gorm:"type:varchar(16)" json:"method"`
	Location    string          `gorm:"not null" json:"location"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	Status      InterviewStatus `gorm:"type:varchar(16);default:'pending';index" json:"status"`
}

// Package repository is the only code that touches storage. Lifecycle
// services own their rows exclusively through these interfaces; the
// conditional-update and unique-constraint semantics live here, next
// to the SQL they depend on.
package repository

import (
	"context"

	"github.com/talentbridge/recruitment-backend/internal/models"
)

type JobRepository interface {
	Create(ctx context.Context, job *models.JobPosting) error
	GetByID(ctx context.Context, id uint) (*models.JobPosting, error)
	// SaveFields writes the editable fields plus status, guarded on the
	// status the caller read. Returns false when the guard no longer
	// matches (someone else transitioned the row first).
	SaveFields(ctx context.Context, job *models.JobPosting, guard models.JobStatus) (bool, error)
	// UpdateStatusFrom performs the single atomic conditional transition:
	// set status=to where id and status∈from. Returns false when no row
	// matched.
	UpdateStatusFrom(ctx context.Context, id uint, from []models.JobStatus, to models.JobStatus, reason string) (bool, error)
	Delete(ctx context.Context, id uint) error
	ListPublished(ctx context.Context, limit, offset int) ([]models.JobPosting, error)
	ListByEmployer(ctx context.Context, employerID uint) ([]models.JobPosting, error)
	ListByStatus(ctx context.Context, status models.JobStatus) ([]models.JobPosting, error)
}

type ApplicationRepository interface {
	// Create relies on the (candidate_id, job_id) unique index and
	// surfaces violations as the duplicate-submission error.
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	ExistsForJobAndCandidate(ctx context.Context, jobID, candidateID uint) (bool, error)
	ListByCandidate(ctx context.Context, candidateID uint) ([]models.Application, error)
	// ListByEmployer returns applications against postings owned by the
	// given employer; employerID 0 means unscoped (approver view).
	ListByEmployer(ctx context.Context, employerID uint) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (bool, error)
	CountByJob(ctx context.Context, jobID uint, status *models.ApplicationStatus) (int64, error)
}

type InterviewRepository interface {
	Create(ctx context.Context, iv *models.Interview) error
	GetByID(ctx context.Context, id uint) (*models.Interview, error)
	Save(ctx context.Context, iv *models.Interview) error
	Delete(ctx context.Context, id uint) error
	// ListByInterviewer with interviewerID 0 returns all interviews.
	ListByInterviewer(ctx context.Context, interviewerID uint) ([]models.Interview, error)
	CountByStatus(ctx context.Context, interviewerID uint) (map[models.InterviewStatus]int64, error)
}

type AccountRepository interface {
	CreateCandidate(ctx context.Context, c *models.Candidate) error
	CreateEmployer(ctx context.Context, e *models.Employer) error
	CandidateByEmail(ctx context.Context, email string) (*models.Candidate, error)
	EmployerByEmail(ctx context.Context, email string) (*models.Employer, error)
	CandidateByID(ctx context.Context, id uint) (*models.Candidate, error)
	EmployerByID(ctx context.Context, id uint) (*models.Employer, error)
}

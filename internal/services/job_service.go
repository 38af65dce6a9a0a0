package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/authz"
	"github.com/talentbridge/recruitment-backend/internal/models"
	"github.com/talentbridge/recruitment-backend/internal/repository"
)

// JobService owns the posting state machine:
//
//	DRAFT → PENDING → {PUBLISHED, REJECTED}
//	PUBLISHED → CLOSED
//	CLOSED → DRAFT    (reopenForEdit, via edit only)
//	REJECTED → PENDING (resubmission)
//
// Every transition is a single conditional UPDATE guarded on the source
// status, so concurrent callers cannot lose updates.
type JobService struct {
	jobs   repository.JobRepository
	logger *zap.Logger
}

func NewJobService(jobs repository.JobRepository, logger *zap.Logger) *JobService {
	return &JobService{jobs: jobs, logger: logger}
}

type JobFields struct {
	Title           string
	Description     string
	Requirements    string
	Benefits        string
	Location        string
	EmploymentType  string
	ExperienceLevel string
	SalaryMin       *int
	SalaryMax       *int
	Positions       int
	Deadline        *time.Time
	ContactInfo     string
}

func validateJobFields(f JobFields) error {
	if f.Title == "" {
		return apperr.Validation("title is required")
	}
	if f.Positions < 1 {
		return apperr.Validation("positions must be at least 1")
	}
	if f.SalaryMin != nil && f.SalaryMax != nil && *f.SalaryMin > *f.SalaryMax {
		return apperr.Validation("salary_min must not exceed salary_max")
	}
	return nil
}

func applyJobFields(job *models.JobPosting, f JobFields) {
	job.Title = f.Title
	job.Description = f.Description
	job.Requirements = f.Requirements
	job.Benefits = f.Benefits
	job.Location = f.Location
	job.EmploymentType = f.EmploymentType
	job.ExperienceLevel = f.ExperienceLevel
	job.SalaryMin = f.SalaryMin
	job.SalaryMax = f.SalaryMax
	job.Positions = f.Positions
	job.Deadline = f.Deadline
	job.ContactInfo = f.ContactInfo
}

func (s *JobService) Create(ctx context.Context, caller authz.Identity, fields JobFields) (*models.JobPosting, error) {
	if err := authz.JobCreate(caller, nil); err != nil {
		return nil, err
	}
	if err := validateJobFields(fields); err != nil {
		return nil, err
	}
	job := &models.JobPosting{
		EmployerID: caller.ID,
		Status:     models.JobDraft,
	}
	applyJobFields(job, fields)
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info("job posting created",
		zap.Uint("job_id", job.ID),
		zap.Uint("employer_id", caller.ID))
	return job, nil
}

// Edit is refused while the posting is under review. Editing a CLOSED
// posting is the named reopenForEdit transition: the edit lands and the
// status resets to DRAFT, forcing another approval round before the
// posting is publicly visible again.
func (s *JobService) Edit(ctx context.Context, caller authz.Identity, jobID uint, fields JobFields) (*models.JobPosting, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authz.JobEdit(caller, job); err != nil {
		return nil, err
	}
	if job.Status == models.JobPending {
		return nil, apperr.InvalidTransition("posting is frozen while under review", string(job.Status))
	}
	if err := validateJobFields(fields); err != nil {
		return nil, err
	}
	guard := job.Status
	applyJobFields(job, fields)
	if job.Status == models.JobClosed {
		job.Status = models.JobDraft
	}
	applied, err := s.jobs.SaveFields(ctx, job, guard)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, s.staleTransition(ctx, jobID, "posting changed state during edit")
	}
	return s.jobs.GetByID(ctx, jobID)
}

func (s *JobService) SubmitForApproval(ctx context.Context, caller authz.Identity, jobID uint) (*models.JobPosting, error) {
	return s.transition(ctx, caller, jobID, authz.JobSubmit,
		[]models.JobStatus{models.JobDraft, models.JobRejected}, models.JobPending, "",
		"only draft or rejected postings can be submitted")
}

func (s *JobService) Approve(ctx context.Context, caller authz.Identity, jobID uint) (*models.JobPosting, error) {
	return s.transition(ctx, caller, jobID, authz.JobApprove,
		[]models.JobStatus{models.JobPending}, models.JobPublished, "",
		"only pending postings can be approved")
}

func (s *JobService) Reject(ctx context.Context, caller authz.Identity, jobID uint, reason string) (*models.JobPosting, error) {
	return s.transition(ctx, caller, jobID, authz.JobReject,
		[]models.JobStatus{models.JobPending}, models.JobRejected, reason,
		"only pending postings can be rejected")
}

func (s *JobService) Close(ctx context.Context, caller authz.Identity, jobID uint) (*models.JobPosting, error) {
	return s.transition(ctx, caller, jobID, authz.JobClose,
		[]models.JobStatus{models.JobPublished}, models.JobClosed, "",
		"only published postings can be closed")
}

func (s *JobService) transition(ctx context.Context, caller authz.Identity, jobID uint, gate authz.Predicate, from []models.JobStatus, to models.JobStatus, reason, refusal string) (*models.JobPosting, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := gate(caller, job); err != nil {
		return nil, err
	}
	applied, err := s.jobs.UpdateStatusFrom(ctx, jobID, from, to, reason)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, s.staleTransition(ctx, jobID, refusal)
	}
	s.logger.Info("job posting transitioned",
		zap.Uint("job_id", jobID),
		zap.String("to", string(to)),
		zap.Uint("caller_id", caller.ID))
	return s.jobs.GetByID(ctx, jobID)
}

// staleTransition re-reads after a failed conditional update so the
// refusal carries the status the row actually has now.
func (s *JobService) staleTransition(ctx context.Context, jobID uint, refusal string) error {
	fresh, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	return apperr.InvalidTransition(refusal, string(fresh.Status))
}

// Delete is the only hard removal in the system and is reserved for the
// cross-cutting approver.
func (s *JobService) Delete(ctx context.Context, caller authz.Identity, jobID uint) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if err := authz.JobDelete(caller, job); err != nil {
		return err
	}
	return s.jobs.Delete(ctx, jobID)
}

// ListPublic returns only published postings and needs no identity.
func (s *JobService) ListPublic(ctx context.Context, limit, offset int) ([]models.JobPosting, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.jobs.ListPublished(ctx, limit, offset)
}

// GetPublic hides everything that is not published; anonymous callers
// cannot distinguish drafts from absent rows.
func (s *JobService) GetPublic(ctx context.Context, jobID uint) (*models.JobPosting, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobPublished {
		return nil, apperr.NotFound("job posting not found")
	}
	return job, nil
}

func (s *JobService) ListMine(ctx context.Context, caller authz.Identity) ([]models.JobPosting, error) {
	if err := authz.JobCreate(caller, nil); err != nil {
		return nil, err
	}
	return s.jobs.ListByEmployer(ctx, caller.ID)
}

// PendingQueue is the approver's default work list.
func (s *JobService) PendingQueue(ctx context.Context, caller authz.Identity) ([]models.JobPosting, error) {
	if err := authz.JobPendingQueue(caller, nil); err != nil {
		return nil, err
	}
	return s.jobs.ListByStatus(ctx, models.JobPending)
}

// Lookup is the read API other lifecycle components use; it bypasses the
// public visibility filter but never exposes a mutation path.
func (s *JobService) Lookup(ctx context.Context, jobID uint) (*models.JobPosting, error) {
	return s.jobs.GetByID(ctx, jobID)
}

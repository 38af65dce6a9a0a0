package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/authz"
	"github.com/talentbridge/recruitment-backend/internal/models"
	"github.com/talentbridge/recruitment-backend/internal/repository"
)

// jobReader is the cross-component read API: the application lifecycle
// checks posting state through the job component, never through its
// storage.
type jobReader interface {
	Lookup(ctx context.Context, jobID uint) (*models.JobPosting, error)
}

type candidateReader interface {
	CandidateByID(ctx context.Context, id uint) (*models.Candidate, error)
}

// ApplicationService owns the application lifecycle. The status field is a
// soft-ordered set rather than a hard machine: any value from the closed
// set {submitted, reviewing, accepted, rejected} may be applied by an
// authorized staff mutation, and unknown values are refused.
type ApplicationService struct {
	apps       repository.ApplicationRepository
	jobs       jobReader
	candidates candidateReader
	logger     *zap.Logger
}

func NewApplicationService(apps repository.ApplicationRepository, jobs jobReader, candidates candidateReader, logger *zap.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, candidates: candidates, logger: logger}
}

// Submit creates the one allowed application per (candidate, job). The
// existence check here is only a fast path; the storage unique index is
// what actually closes the concurrent double-submit race, and its
// violation comes back as the same DuplicateSubmission error.
func (s *ApplicationService) Submit(ctx context.Context, caller authz.Identity, jobID uint, resume string) (*models.Application, error) {
	if err := authz.ApplicationSubmit(caller, nil); err != nil {
		return nil, err
	}
	job, err := s.jobs.Lookup(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobPublished {
		return nil, apperr.Validation("job posting is not open for applications")
	}
	if resume == "" {
		candidate, err := s.candidates.CandidateByID(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		if candidate.DefaultResume == "" {
			return nil, apperr.Validation("no resume supplied and no default resume on profile")
		}
		resume = candidate.DefaultResume
	}
	exists, err := s.apps.ExistsForJobAndCandidate(ctx, jobID, caller.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Duplicate("an application for this job already exists")
	}
	app := &models.Application{
		JobID:       jobID,
		CandidateID: caller.ID,
		Resume:      resume,
		Status:      models.ApplicationSubmitted,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	s.logger.Info("application submitted",
		zap.Uint("application_id", app.ID),
		zap.Uint("job_id", jobID),
		zap.Uint("candidate_id", caller.ID))
	return app, nil
}

// List is role-scoped: candidates see their own, HR sees applications
// against their own postings, TPNS sees everything and may narrow to a
// single employer.
func (s *ApplicationService) List(ctx context.Context, caller authz.Identity, employerFilter uint) ([]models.Application, error) {
	if err := authz.Authenticated(caller, nil); err != nil {
		return nil, err
	}
	switch caller.Role {
	case models.RoleCandidate:
		return s.apps.ListByCandidate(ctx, caller.ID)
	case models.RoleHR:
		if employerFilter != 0 && employerFilter != caller.ID {
			return nil, apperr.Forbidden("cannot list another employer's applications")
		}
		return s.apps.ListByEmployer(ctx, caller.ID)
	case models.RoleTPNS:
		return s.apps.ListByEmployer(ctx, employerFilter)
	default:
		return nil, apperr.Forbidden("insufficient role")
	}
}

// Get returns the full detail with joined job and candidate summaries.
// Reads are scoped to the candidate who applied, the employer who owns
// the posting, or TPNS.
func (s *ApplicationService) Get(ctx context.Context, caller authz.Identity, id uint) (*models.Application, error) {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.Role == models.RoleCandidate {
		if app.CandidateID != caller.ID {
			return nil, apperr.Forbidden("application belongs to another candidate")
		}
		return app, nil
	}
	if err := authz.ApplicationRead(caller, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, caller authz.Identity, id uint, rawStatus string) (*models.Application, error) {
	status, ok := models.ParseApplicationStatus(rawStatus)
	if !ok {
		return nil, apperr.Validation("status must be one of submitted, reviewing, accepted, rejected")
	}
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.ApplicationUpdate(caller, app); err != nil {
		return nil, err
	}
	found, err := s.apps.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound("application not found")
	}
	s.logger.Info("application status updated",
		zap.Uint("application_id", id),
		zap.String("status", string(status)),
		zap.Uint("caller_id", caller.ID))
	app.Status = status
	return app, nil
}

func (s *ApplicationService) CountByJob(ctx context.Context, caller authz.Identity, jobID uint, rawStatus string) (int64, error) {
	job, err := s.jobs.Lookup(ctx, jobID)
	if err != nil {
		return 0, err
	}
	if err := authz.ApplicationCount(caller, job); err != nil {
		return 0, err
	}
	var status *models.ApplicationStatus
	if rawStatus != "" {
		parsed, ok := models.ParseApplicationStatus(rawStatus)
		if !ok {
			return 0, apperr.Validation("status must be one of submitted, reviewing, accepted, rejected")
		}
		status = &parsed
	}
	return s.apps.CountByJob(ctx, jobID, status)
}

// Lookup is the read API the interview scheduler uses.
func (s *ApplicationService) Lookup(ctx context.Context, id uint) (*models.Application, error) {
	return s.apps.GetByID(ctx, id)
}

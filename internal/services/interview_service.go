package services

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/authz"
	"github.com/talentbridge/recruitment-backend/internal/models"
	"github.com/talentbridge/recruitment-backend/internal/notify"
	"github.com/talentbridge/recruitment-backend/internal/repository"
)

type applicationReader interface {
	Lookup(ctx context.Context, id uint) (*models.Application, error)
}

// InterviewService owns the interview sub-workflow. Interviews always hang
// off exactly one application and are owned by the employer who scheduled
// them. A decided application does not auto-cancel its interviews;
// cancellation stays an explicit interviewer action.
type InterviewService struct {
	interviews    repository.InterviewRepository
	applications  applicationReader
	notifier      notify.Notifier
	notifyTimeout time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

func NewInterviewService(interviews repository.InterviewRepository, applications applicationReader, notifier notify.Notifier, notifyTimeout time.Duration, logger *zap.Logger) *InterviewService {
	return &InterviewService{
		interviews:    interviews,
		applications:  applications,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		logger:        logger,
		now:           time.Now,
	}
}

type CreateInterviewInput struct {
	ApplicationID uint
	ScheduledAt   time.Time
	Method        string
	Location      string
	Notes         string
}

// CreateResult reports partial success: a persisted interview whose
// notification failed is still created.
type CreateResult struct {
	Interview *models.Interview
	Notified  bool
}

func (s *InterviewService) Create(ctx context.Context, caller authz.Identity, input CreateInterviewInput) (*CreateResult, error) {
	app, err := s.applications.Lookup(ctx, input.ApplicationID)
	if err != nil {
		return nil, err
	}
	if err := authz.InterviewCreate(caller, app); err != nil {
		return nil, err
	}
	method, ok := models.ParseInterviewMethod(input.Method)
	if !ok {
		return nil, apperr.Validation("method must be remote-video or on-site")
	}
	if input.Location == "" {
		return nil, apperr.Validation("location or meeting link is required")
	}
	if input.ScheduledAt.Before(s.now()) {
		return nil, apperr.Validation("scheduled time must not be in the past")
	}
	iv := &models.Interview{
		ApplicationID: input.ApplicationID,
		InterviewerID: caller.ID,
		ScheduledAt:   input.ScheduledAt,
		Method:        method,
		Location:      input.Location,
		Notes:         input.Notes,
		Status:        models.InterviewPending,
	}
	if err := s.interviews.Create(ctx, iv); err != nil {
		return nil, err
	}

	// Fire-and-forget: the interview row is already durable, so a failed
	// or slow publish degrades to notified=false instead of rolling back.
	notified := true
	notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	event := notify.NewEvent("interview.scheduled", map[string]string{
		"interview_id":   strconv.FormatUint(uint64(iv.ID), 10),
		"application_id": strconv.FormatUint(uint64(iv.ApplicationID), 10),
		"candidate_id":   strconv.FormatUint(uint64(app.CandidateID), 10),
		"scheduled_at":   iv.ScheduledAt.UTC().Format(time.RFC3339),
		"method":         string(iv.Method),
		"location":       iv.Location,
	})
	if err := s.notifier.Publish(notifyCtx, notify.SubjectInterviewScheduled, event); err != nil {
		notified = false
		s.logger.Warn("interview created but notification failed",
			zap.Uint("interview_id", iv.ID),
			zap.Error(err))
	}
	return &CreateResult{Interview: iv, Notified: notified}, nil
}

func (s *InterviewService) List(ctx context.Context, caller authz.Identity) ([]models.Interview, error) {
	if err := authz.InterviewList(caller, nil); err != nil {
		return nil, err
	}
	scope := caller.ID
	if caller.Role == models.RoleTPNS {
		scope = 0
	}
	return s.interviews.ListByInterviewer(ctx, scope)
}

type UpdateInterviewInput struct {
	ScheduledAt *time.Time
	Method      *string
	Location    *string
	Notes       *string
	Status      *string
}

func (s *InterviewService) Update(ctx context.Context, caller authz.Identity, id uint, input UpdateInterviewInput) (*models.Interview, error) {
	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.InterviewModify(caller, iv); err != nil {
		return nil, err
	}
	if input.Status != nil {
		status, ok := models.ParseInterviewStatus(*input.Status)
		if !ok {
			return nil, apperr.Validation("status must be one of pending, confirmed, completed, canceled")
		}
		iv.Status = status
	}
	if input.Method != nil {
		method, ok := models.ParseInterviewMethod(*input.Method)
		if !ok {
			return nil, apperr.Validation("method must be remote-video or on-site")
		}
		iv.Method = method
	}
	if input.ScheduledAt != nil {
		iv.ScheduledAt = *input.ScheduledAt
	}
	if input.Location != nil {
		if *input.Location == "" {
			return nil, apperr.Validation("location or meeting link is required")
		}
		iv.Location = *input.Location
	}
	if input.Notes != nil {
		iv.Notes = *input.Notes
	}
	if err := s.interviews.Save(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (s *InterviewService) Delete(ctx context.Context, caller authz.Identity, id uint) error {
	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.InterviewModify(caller, iv); err != nil {
		return err
	}
	return s.interviews.Delete(ctx, id)
}

// InterviewStats always carries all four statuses so clients render stable
// dashboards without probing for missing keys.
type InterviewStats struct {
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Canceled  int64 `json:"canceled"`
	Total     int64 `json:"total"`
}

// Stats aggregates per-status counts. HR is pinned to their own
// interviews; TPNS may look at everyone or a single interviewer.
func (s *InterviewService) Stats(ctx context.Context, caller authz.Identity, interviewerFilter uint) (*InterviewStats, error) {
	if err := authz.InterviewList(caller, nil); err != nil {
		return nil, err
	}
	scope := caller.ID
	if caller.Role == models.RoleTPNS {
		scope = interviewerFilter
	}
	counts, err := s.interviews.CountByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}
	stats := &InterviewStats{
		Pending:   counts[models.InterviewPending],
		Confirmed: counts[models.InterviewConfirmed],
		Completed: counts[models.InterviewCompleted],
		Canceled:  counts[models.InterviewCanceled],
	}
	stats.Total = stats.Pending + stats.Confirmed + stats.Completed + stats.Canceled
	return stats, nil
}

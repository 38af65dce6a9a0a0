package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/authz"
	"github.com/talentbridge/recruitment-backend/internal/models"
)

var (
	hrOwner = authz.Identity{ID: 1, Role: models.RoleHR}
	hrOther = authz.Identity{ID: 2, Role: models.RoleHR}
	tpns    = authz.Identity{ID: 3, Role: models.RoleTPNS}
	cand    = authz.Identity{ID: 4, Role: models.RoleCandidate}
)

func newJobService() (*JobService, *fakeJobRepo) {
	repo := newFakeJobRepo()
	return NewJobService(repo, zap.NewNop()), repo
}

func sampleFields() JobFields {
	return JobFields{Title: "Backend Engineer", Positions: 2, Location: "Remote"}
}

func mustCreateJob(t *testing.T, s *JobService, caller authz.Identity) *models.JobPosting {
	t.Helper()
	job, err := s.Create(context.Background(), caller, sampleFields())
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	return job
}

func forceStatus(repo *fakeJobRepo, id uint, status models.JobStatus) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.jobs[id].Status = status
}

func TestCreateStartsInDraft(t *testing.T) {
	s, _ := newJobService()
	job := mustCreateJob(t, s, hrOwner)
	if job.Status != models.JobDraft {
		t.Fatalf("status = %s, want DRAFT", job.Status)
	}
	if job.EmployerID != hrOwner.ID {
		t.Fatalf("employer id = %d, want %d", job.EmployerID, hrOwner.ID)
	}
}

func TestCreateRejectsCandidates(t *testing.T) {
	s, _ := newJobService()
	_, err := s.Create(context.Background(), cand, sampleFields())
	if !apperr.Is(err, apperr.CodeForbidden) {
		t.Fatalf("err = %v, want FORBIDDEN", err)
	}
}

func TestCreateValidation(t *testing.T) {
	s, _ := newJobService()
	low, high := 90000, 60000
	cases := []struct {
		name   string
		fields JobFields
	}{
		{"missing title", JobFields{Positions: 1}},
		{"zero positions", JobFields{Title: "x", Positions: 0}},
		{"inverted salary", JobFields{Title: "x", Positions: 1, SalaryMin: &low, SalaryMax: &high}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Create(context.Background(), hrOwner, tc.fields); !apperr.Is(err, apperr.CodeValidation) {
				t.Fatalf("err = %v, want VALIDATION", err)
			}
		})
	}
}

func TestApprovalFlowEndsPublished(t *testing.T) {
	s, _ := newJobService()
	ctx := context.Background()
	job := mustCreateJob(t, s, hrOwner)

	job, err := s.SubmitForApproval(ctx, hrOwner, job.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if job.Status != models.JobPending {
		t.Fatalf("status = %s, want PENDING", job.Status)
	}

	// The owner cannot self-approve.
	if _, err := s.Approve(ctx, hrOwner, job.ID); !apperr.Is(err, apperr.CodeForbidden) {
		t.Fatalf("owner approve err = %v, want FORBIDDEN", err)
	}

	job, err = s.Approve(ctx, tpns, job.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if job.Status != models.JobPublished {
		t.Fatalf("status = %s, want PUBLISHED", job.Status)
	}

	public, err := s.ListPublic(ctx, 20, 0)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 1 || public[0].ID != job.ID {
		t.Fatalf("public listing = %v, want the published job", public)
	}
}

func TestApproveRejectOnlyFromPending(t *testing.T) {
	for _, status := range []models.JobStatus{models.JobDraft, models.JobRejected, models.JobPublished, models.JobClosed} {
		t.Run(string(status), func(t *testing.T) {
			s, repo := newJobService()
			job := mustCreateJob(t, s, hrOwner)
			forceStatus(repo, job.ID, status)

			if _, err := s.Approve(context.Background(), tpns, job.ID); !apperr.Is(err, apperr.CodeInvalidTransition) {
				t.Fatalf("approve err = %v, want INVALID_TRANSITION", err)
			}
			if _, err := s.Reject(context.Background(), tpns, job.ID, "nope"); !apperr.Is(err, apperr.CodeInvalidTransition) {
				t.Fatalf("reject err = %v, want INVALID_TRANSITION", err)
			}
			fresh, _ := repo.GetByID(context.Background(), job.ID)
			if fresh.Status != status {
				t.Fatalf("status changed to %s after refused transition", fresh.Status)
			}
		})
	}
}

func TestInvalidTransitionEchoesCurrentStatus(t *testing.T) {
	s, _ := newJobService()
	job := mustCreateJob(t, s, hrOwner)
	_, err := s.Approve(context.Background(), tpns, job.ID)
	var e *apperr.Error
	if !errors.As(err, &e) {
		t.Fatalf("err = %v, want *apperr.Error", err)
	}
	if e.Details["current_status"] != string(models.JobDraft) {
		t.Fatalf("details = %v, want current_status=DRAFT", e.Details)
	}
}

func TestRejectStoresReasonAndAllowsResubmission(t *testing.T) {
	s, repo := newJobService()
	ctx := context.Background()
	job := mustCreateJob(t, s, hrOwner)
	if _, err := s.SubmitForApproval(ctx, hrOwner, job.ID); err != nil {
		t.Fatalf("submit: %v", err)
	}
	job, err := s.Reject(ctx, tpns, job.ID, "salary range missing")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if job.Status != models.JobRejected || job.RejectReason != "salary range missing" {
		t.Fatalf("got status=%s reason=%q", job.Status, job.RejectReason)
	}

	job, err = s.SubmitForApproval(ctx, hrOwner, job.ID)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if job.Status != models.JobPending {
		t.Fatalf("status = %s, want PENDING after resubmission", job.Status)
	}
	fresh, _ := repo.GetByID(ctx, job.ID)
	if fresh.RejectReason != "" {
		t.Fatalf("reject reason not cleared on resubmission: %q", fresh.RejectReason)
	}
}

func TestEditFrozenWhilePending(t *testing.T) {
	s, repo := newJobService()
	job := mustCreateJob(t, s, hrOwner)
	forceStatus(repo, job.ID, models.JobPending)
	_, err := s.Edit(context.Background(), hrOwner, job.ID, sampleFields())
	if !apperr.Is(err, apperr.CodeInvalidTransition) {
		t.Fatalf("err = %v, want INVALID_TRANSITION", err)
	}
}

func TestEditClosedReopensAsDraft(t *testing.T) {
	s, repo := newJobService()
	ctx := context.Background()
	job := mustCreateJob(t, s, hrOwner)
	forceStatus(repo, job.ID, models.JobClosed)

	fields := sampleFields()
	fields.Title = "Backend Engineer (reopened)"
	edited, err := s.Edit(ctx, hrOwner, job.ID, fields)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Status != models.JobDraft {
		t.Fatalf("status = %s, want DRAFT after editing a closed posting", edited.Status)
	}
	if edited.Title != "Backend Engineer (reopened)" {
		t.Fatalf("title not updated: %q", edited.Title)
	}

	// Not publicly visible until it goes through approval again.
	public, _ := s.ListPublic(ctx, 20, 0)
	if len(public) != 0 {
		t.Fatalf("reopened posting leaked into the public listing")
	}
}

func TestEditPublishedKeepsStatus(t *testing.T) {
	s, repo := newJobService()
	job := mustCreateJob(t, s, hrOwner)
	forceStatus(repo, job.ID, models.JobPublished)
	edited, err := s.Edit(context.Background(), hrOwner, job.ID, sampleFields())
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Status != models.JobPublished {
		t.Fatalf("status = %s, want PUBLISHED", edited.Status)
	}
}

func TestEditOwnershipGate(t *testing.T) {
	s, _ := newJobService()
	job := mustCreateJob(t, s, hrOwner)
	if _, err := s.Edit(context.Background(), hrOther, job.ID, sampleFields()); !apperr.Is(err, apperr.CodeForbidden) {
		t.Fatalf("other HR edit err = %v, want FORBIDDEN", err)
	}
	if _, err := s.Edit(context.Background(), tpns, job.ID, sampleFields()); err != nil {
		t.Fatalf("TPNS edit err = %v, want allowed", err)
	}
}

func TestCloseOnlyFromPublished(t *testing.T) {
	s, repo := newJobService()
	job := mustCreateJob(t, s, hrOwner)
	if _, err := s.Close(context.Background(), hrOwner, job.ID); !apperr.Is(err, apperr.CodeInvalidTransition) {
		t.Fatalf("close from draft err = %v, want INVALID_TRANSITION", err)
	}
	forceStatus(repo, job.ID, models.JobPublished)
	closed, err := s.Close(context.Background(), hrOwner, job.ID)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.Status != models.JobClosed {
		t.Fatalf("status = %s, want CLOSED", closed.Status)
	}
}

func TestDeleteReservedForTPNS(t *testing.T) {
	s, repo := newJobService()
	ctx := context.Background()
	job := mustCreateJob(t, s, hrOwner)
	if err := s.Delete(ctx, hrOwner, job.ID); !apperr.Is(err, apperr.CodeForbidden) {
		t.Fatalf("owner delete err = %v, want FORBIDDEN", err)
	}
	if err := s.Delete(ctx, tpns, job.ID); err != nil {
		t.Fatalf("TPNS delete err = %v", err)
	}
	if _, err := repo.GetByID(ctx, job.ID); !apperr.Is(err, apperr.CodeNotFound) {
		t.Fatalf("job still present after delete")
	}
}

func TestGetPublicHidesUnpublished(t *testing.T) {
	s, _ := newJobService()
	job := mustCreateJob(t, s, hrOwner)
	if _, err := s.GetPublic(context.Background(), job.ID); !apperr.Is(err, apperr.CodeNotFound) {
		t.Fatalf("draft visible to anonymous caller: %v", err)
	}
}

func TestPendingQueueTPNSOnly(t *testing.T) {
	s, repo := newJobService()
	ctx := context.Background()
	job := mustCreateJob(t, s, hrOwner)
	forceStatus(repo, job.ID, models.JobPending)

	if _, err := s.PendingQueue(ctx, hrOwner); !apperr.Is(err, apperr.CodeForbidden) {
		t.Fatalf("HR queue err = %v, want FORBIDDEN", err)
	}
	queue, err := s.PendingQueue(ctx, tpns)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(queue) != 1 || queue[0].ID != job.ID {
		t.Fatalf("queue = %v, want the pending job", queue)
	}
}

func TestOperationsOnMissingJob(t *testing.T) {
	s, _ := newJobService()
	ctx := context.Background()
	if _, err := s.Approve(ctx, tpns, 99); !apperr.Is(err, apperr.CodeNotFound) {
		t.Fatalf("approve missing err = %v, want NOT_FOUND", err)
	}
	if _, err := s.Edit(ctx, tpns, 99, sampleFields()); !apperr.Is(err, apperr.CodeNotFound) {
		t.Fatalf("edit missing err = %v, want NOT_FOUND", err)
	}
}

package services

import (
	"context"
	"errors"
	"sync"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/models"
	"github.com/talentbridge/recruitment-backend/internal/notify"
)

// In-memory fakes emulating the storage semantics the services rely on:
// conditional status updates report whether a row matched, and application
// creation enforces the (candidate, job) unique constraint.

type fakeJobRepo struct {
	mu   sync.Mutex
	seq  uint
	jobs map[uint]*models.JobPosting
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uint]*models.JobPosting)}
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	job.ID = r.seq
	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uint) (*models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, apperr.NotFound("job posting not found")
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) SaveFields(_ context.Context, job *models.JobPosting, guard models.JobStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.jobs[job.ID]
	if !ok || stored.Status != guard {
		return false, nil
	}
	employerID := stored.EmployerID
	copied := *job
	copied.EmployerID = employerID
	r.jobs[job.ID] = &copied
	return true, nil
}

func (r *fakeJobRepo) UpdateStatusFrom(_ context.Context, id uint, from []models.JobStatus, to models.JobStatus, reason string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return false, nil
	}
	matched := false
	for _, s := range from {
		if job.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}
	job.Status = to
	if to == models.JobRejected {
		job.RejectReason = reason
	} else if to == models.JobPending {
		job.RejectReason = ""
	}
	return true, nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return apperr.NotFound("job posting not found")
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) ListPublished(_ context.Context, _, _ int) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobPosting
	for _, job := range r.jobs {
		if job.Status == models.JobPublished {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListByEmployer(_ context.Context, employerID uint) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobPosting
	for _, job := range r.jobs {
		if job.EmployerID == employerID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListByStatus(_ context.Context, status models.JobStatus) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobPosting
	for _, job := range r.jobs {
		if job.Status == status {
			out = append(out, *job)
		}
	}
	return out, nil
}

type pairKey struct {
	jobID       uint
	candidateID uint
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	seq  uint
	apps map[uint]*models.Application
	pair map[pairKey]uint
	jobs *fakeJobRepo
	// blindExists simulates the fast-path check racing past a concurrent
	// insert: Exists reports false while the constraint still holds.
	blindExists bool
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps: make(map[uint]*models.Application),
		pair: make(map[pairKey]uint),
		jobs: jobs,
	}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{jobID: app.JobID, candidateID: app.CandidateID}
	if _, exists := r.pair[key]; exists {
		return apperr.Duplicate("an application for this job already exists")
	}
	r.seq++
	app.ID = r.seq
	stored := *app
	r.apps[app.ID] = &stored
	r.pair[key] = app.ID
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id uint) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, apperr.NotFound("application not found")
	}
	copied := *app
	if job, ok := r.jobs.jobs[app.JobID]; ok {
		copied.Job = *job
	}
	return &copied, nil
}

func (r *fakeApplicationRepo) ExistsForJobAndCandidate(_ context.Context, jobID, candidateID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.blindExists {
		return false, nil
	}
	_, ok := r.pair[pairKey{jobID: jobID, candidateID: candidateID}]
	return ok, nil
}

func (r *fakeApplicationRepo) ListByCandidate(_ context.Context, candidateID uint) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, app := range r.apps {
		if app.CandidateID == candidateID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByEmployer(_ context.Context, employerID uint) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, app := range r.apps {
		job, ok := r.jobs.jobs[app.JobID]
		if !ok {
			continue
		}
		if employerID == 0 || job.EmployerID == employerID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id uint, status models.ApplicationStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return false, nil
	}
	app.Status = status
	return true, nil
}

func (r *fakeApplicationRepo) CountByJob(_ context.Context, jobID uint, status *models.ApplicationStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, app := range r.apps {
		if app.JobID != jobID {
			continue
		}
		if status != nil && app.Status != *status {
			continue
		}
		count++
	}
	return count, nil
}

type fakeInterviewRepo struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]*models.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{items: make(map[uint]*models.Interview)}
}

func (r *fakeInterviewRepo) Create(_ context.Context, iv *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	iv.ID = r.seq
	stored := *iv
	r.items[iv.ID] = &stored
	return nil
}

func (r *fakeInterviewRepo) GetByID(_ context.Context, id uint) (*models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.items[id]
	if !ok {
		return nil, apperr.NotFound("interview not found")
	}
	copied := *iv
	return &copied, nil
}

func (r *fakeInterviewRepo) Save(_ context.Context, iv *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[iv.ID]; !ok {
		return apperr.NotFound("interview not found")
	}
	stored := *iv
	r.items[iv.ID] = &stored
	return nil
}

func (r *fakeInterviewRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperr.NotFound("interview not found")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeInterviewRepo) ListByInterviewer(_ context.Context, interviewerID uint) ([]models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Interview
	for _, iv := range r.items {
		if interviewerID == 0 || iv.InterviewerID == interviewerID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (r *fakeInterviewRepo) CountByStatus(_ context.Context, interviewerID uint) (map[models.InterviewStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[models.InterviewStatus]int64)
	for _, iv := range r.items {
		if interviewerID == 0 || iv.InterviewerID == interviewerID {
			counts[iv.Status]++
		}
	}
	return counts, nil
}

type fakeCandidateReader struct {
	candidates map[uint]*models.Candidate
}

func (r *fakeCandidateReader) CandidateByID(_ context.Context, id uint) (*models.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, apperr.NotFound("candidate not found")
	}
	copied := *c
	return &copied, nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []notify.Event
	fail   bool
}

func (n *fakeNotifier) Publish(_ context.Context, _ string, event notify.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("broker unreachable")
	}
	n.events = append(n.events, event)
	return nil
}

func (n *fakeNotifier) Close() {}

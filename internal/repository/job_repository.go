package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/models"
)

type gormJobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &gormJobRepository{db: db}
}

func (r *gormJobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return apperr.Unavailable("creating job posting", err)
	}
	return nil
}

func (r *gormJobRepository) GetByID(ctx context.Context, id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("job posting not found")
	}
	if err != nil {
		return nil, apperr.Unavailable("loading job posting", err)
	}
	return &job, nil
}

// editableColumns are the fields the edit operation may touch. Status is
// written alongside them so the closed→draft reopen lands in the same
// guarded UPDATE.
var editableColumns = []string{
	"title", "description", "requirements", "benefits", "location",
	"employment_type", "experience_level", "salary_min", "salary_max",
	"positions", "deadline", "contact_info", "status",
}

func (r *gormJobRepository) SaveFields(ctx context.Context, job *models.JobPosting, guard models.JobStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.JobPosting{}).
		Where("id = ? AND status = ?", job.ID, guard).
		Select(editableColumns).
		Updates(job)
	if res.Error != nil {
		return false, apperr.Unavailable("updating job posting", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *gormJobRepository) UpdateStatusFrom(ctx context.Context, id uint, from []models.JobStatus, to models.JobStatus, reason string) (bool, error) {
	updates := map[string]interface{}{"status": to}
	if to == models.JobRejected {
		updates["reject_reason"] = reason
	} else if to == models.JobPending {
		updates["reject_reason"] = ""
	}
	res := r.db.WithContext(ctx).
		Model(&models.JobPosting{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, apperr.Unavailable("transitioning job posting", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *gormJobRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.JobPosting{}, id)
	if res.Error != nil {
		return apperr.Unavailable("deleting job posting", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("job posting not found")
	}
	return nil
}

func (r *gormJobRepository) ListPublished(ctx context.Context, limit, offset int) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.WithContext(ctx).
		Where("status = ?", models.JobPublished).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Unavailable("listing published jobs", err)
	}
	return jobs, nil
}

func (r *gormJobRepository) ListByEmployer(ctx context.Context, employerID uint) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Unavailable("listing employer jobs", err)
	}
	return jobs, nil
}

func (r *gormJobRepository) ListByStatus(ctx context.Context, status models.JobStatus) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("updated_at ASC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Unavailable("listing jobs by status", err)
	}
	return jobs, nil
}

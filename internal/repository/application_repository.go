package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/models"
)

type gormApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

func (r *gormApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Duplicate("an application for this job already exists")
	}
	if err != nil {
		return apperr.Unavailable("creating application", err)
	}
	return nil
}

func (r *gormApplicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Candidate").
		First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("application not found")
	}
	if err != nil {
		return nil, apperr.Unavailable("loading application", err)
	}
	return &app, nil
}

func (r *gormApplicationRepository) ExistsForJobAndCandidate(ctx context.Context, jobID, candidateID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		Count(&count).Error
	if err != nil {
		return false, apperr.Unavailable("checking existing application", err)
	}
	return count > 0, nil
}

func (r *gormApplicationRepository) ListByCandidate(ctx context.Context, candidateID uint) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, apperr.Unavailable("listing candidate applications", err)
	}
	return apps, nil
}

func (r *gormApplicationRepository) ListByEmployer(ctx context.Context, employerID uint) ([]models.Application, error) {
	var apps []models.Application
	q := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Candidate").
		Joins("JOIN job_postings ON job_postings.id = applications.job_id")
	if employerID != 0 {
		q = q.Where("job_postings.employer_id = ?", employerID)
	}
	err := q.Order("applications.created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, apperr.Unavailable("listing employer applications", err)
	}
	return apps, nil
}

func (r *gormApplicationRepository) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return false, apperr.Unavailable("updating application status", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *gormApplicationRepository) CountByJob(ctx context.Context, jobID uint, status *models.ApplicationStatus) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("job_id = ?", jobID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, apperr.Unavailable("counting applications", err)
	}
	return count, nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/models"
)

type gormInterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &gormInterviewRepository{db: db}
}

func (r *gormInterviewRepository) Create(ctx context.Context, iv *models.Interview) error {
	if err := r.db.WithContext(ctx).Create(iv).Error; err != nil {
		return apperr.Unavailable("creating interview", err)
	}
	return nil
}

func (r *gormInterviewRepository) GetByID(ctx context.Context, id uint) (*models.Interview, error) {
	var iv models.Interview
	err := r.db.WithContext(ctx).
		Preload("Application").
		Preload("Application.Job").
		First(&iv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("interview not found")
	}
	if err != nil {
		return nil, apperr.Unavailable("loading interview", err)
	}
	return &iv, nil
}

func (r *gormInterviewRepository) Save(ctx context.Context, iv *models.Interview) error {
	if err := r.db.WithContext(ctx).Save(iv).Error; err != nil {
		return apperr.Unavailable("updating interview", err)
	}
	return nil
}

func (r *gormInterviewRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Interview{}, id)
	if res.Error != nil {
		return apperr.Unavailable("deleting interview", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("interview not found")
	}
	return nil
}

func (r *gormInterviewRepository) ListByInterviewer(ctx context.Context, interviewerID uint) ([]models.Interview, error) {
	var items []models.Interview
	q := r.db.WithContext(ctx).
		Preload("Application").
		Preload("Application.Job")
	if interviewerID != 0 {
		q = q.Where("interviewer_id = ?", interviewerID)
	}
	if err := q.Order("scheduled_at ASC").Find(&items).Error; err != nil {
		return nil, apperr.Unavailable("listing interviews", err)
	}
	return items, nil
}

func (r *gormInterviewRepository) CountByStatus(ctx context.Context, interviewerID uint) (map[models.InterviewStatus]int64, error) {
	type row struct {
		Status models.InterviewStatus
		Count  int64
	}
	var rows []row
	q := r.db.WithContext(ctx).
		Model(&models.Interview{}).
		Select("status, COUNT(*) AS count").
		Group("status")
	if interviewerID != 0 {
		q = q.Where("interviewer_id = ?", interviewerID)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, apperr.Unavailable("aggregating interview stats", err)
	}
	stats := make(map[models.InterviewStatus]int64, len(rows))
	for _, r := range rows {
		stats[r.Status] = r.Count
	}
	return stats, nil
}

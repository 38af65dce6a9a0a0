package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/models"
)

type gormAccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &gormAccountRepository{db: db}
}

func (r *gormAccountRepository) CreateCandidate(ctx context.Context, c *models.Candidate) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("email or phone already registered")
	}
	if err != nil {
		return apperr.Unavailable("creating candidate", err)
	}
	return nil
}

func (r *gormAccountRepository) CreateEmployer(ctx context.Context, e *models.Employer) error {
	err := r.db.WithContext(ctx).Create(e).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("email already registered")
	}
	if err != nil {
		return apperr.Unavailable("creating employer", err)
	}
	return nil
}

func (r *gormAccountRepository) CandidateByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("candidate not found")
	}
	if err != nil {
		return nil, apperr.Unavailable("loading candidate", err)
	}
	return &c, nil
}

func (r *gormAccountRepository) EmployerByEmail(ctx context.Context, email string) (*models.Employer, error) {
	var e models.Employer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("employer not found")
	}
	if err != nil {
		return nil, apperr.Unavailable("loading employer", err)
	}
	return &e, nil
}

func (r *gormAccountRepository) CandidateByID(ctx context.Context, id uint) (*models.Candidate, error) {
	var c models.Candidate
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("candidate not found")
	}
	if err != nil {
		return nil, apperr.Unavailable("loading candidate", err)
	}
	return &c, nil
}

func (r *gormAccountRepository) EmployerByID(ctx context.Context, id uint) (*models.Employer, error) {
	var e models.Employer
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("employer not found")
	}
	if err != nil {
		return nil, apperr.Unavailable("loading employer", err)
	}
	return &e, nil
}

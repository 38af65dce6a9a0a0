package database

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/talentbridge/recruitment-backend/internal/models"
)

// Connect opens the Postgres connection and migrates the schema. The
// TranslateError option is required: repositories rely on
// gorm.ErrDuplicatedKey to map the (candidate_id, job_id) unique index
// into the duplicate-submission error.
func Connect(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := db.AutoMigrate(
		&models.Employer{},
		&models.Candidate{},
		&models.JobPosting{},
		&models.Application{},
		&models.Interview{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/auth"
	"github.com/talentbridge/recruitment-backend/internal/authz"
	"github.com/talentbridge/recruitment-backend/internal/models"
	"github.com/talentbridge/recruitment-backend/internal/repository"
)

// AccountService realizes the external credential collaborator: it hashes
// passwords, verifies logins and mints the bearer tokens the identity
// middleware consumes. The workflow core never touches credentials.
type AccountService struct {
	accounts repository.AccountRepository
	tokens   *auth.TokenProvider
	logger   *zap.Logger
}

func NewAccountService(accounts repository.AccountRepository, tokens *auth.TokenProvider, logger *zap.Logger) *AccountService {
	return &AccountService{accounts: accounts, tokens: tokens, logger: logger}
}

type RegisterCandidateInput struct {
	FullName      string
	Email         string
	Phone         string
	Password      string
	DefaultResume string
}

func (s *AccountService) RegisterCandidate(ctx context.Context, input RegisterCandidateInput) (*models.Candidate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("hashing password", err)
	}
	candidate := &models.Candidate{
		FullName:      input.FullName,
		Email:         input.Email,
		Phone:         input.Phone,
		PasswordHash:  string(hash),
		DefaultResume: input.DefaultResume,
	}
	if err := s.accounts.CreateCandidate(ctx, candidate); err != nil {
		return nil, err
	}
	s.logger.Info("candidate registered", zap.Uint("candidate_id", candidate.ID))
	return candidate, nil
}

type RegisterEmployerInput struct {
	FullName string
	Email    string
	Password string
	Role     string
}

func (s *AccountService) RegisterEmployer(ctx context.Context, input RegisterEmployerInput) (*models.Employer, error) {
	role, ok := models.ParseRole(input.Role)
	if !ok || !role.IsEmployerRole() {
		return nil, apperr.Validation("role must be HR or TPNS")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("hashing password", err)
	}
	employer := &models.Employer{
		FullName:     input.FullName,
		Email:        input.Email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.accounts.CreateEmployer(ctx, employer); err != nil {
		return nil, err
	}
	s.logger.Info("employer registered",
		zap.Uint("employer_id", employer.ID),
		zap.String("role", string(role)))
	return employer, nil
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *AccountService) LoginCandidate(ctx context.Context, email, password string) (*Session, *models.Candidate, error) {
	candidate, err := s.accounts.CandidateByEmail(ctx, email)
	if err != nil {
		// Not-found collapses into the generic credential failure so the
		// endpoint cannot be used to probe registered emails.
		if apperr.Is(err, apperr.CodeNotFound) {
			return nil, nil, apperr.Unauthenticated("invalid credentials")
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(candidate.PasswordHash), []byte(password)) != nil {
		return nil, nil, apperr.Unauthenticated("invalid credentials")
	}
	token, expiresAt, err := s.tokens.Generate(authz.Identity{ID: candidate.ID, Role: models.RoleCandidate})
	if err != nil {
		return nil, nil, apperr.Internal("minting token", err)
	}
	return &Session{Token: token, ExpiresAt: expiresAt}, candidate, nil
}

func (s *AccountService) LoginEmployer(ctx context.Context, email, password string) (*Session, *models.Employer, error) {
	employer, err := s.accounts.EmployerByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.CodeNotFound) {
			return nil, nil, apperr.Unauthenticated("invalid credentials")
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(employer.PasswordHash), []byte(password)) != nil {
		return nil, nil, apperr.Unauthenticated("invalid credentials")
	}
	token, expiresAt, err := s.tokens.Generate(authz.Identity{ID: employer.ID, Role: employer.Role})
	if err != nil {
		return nil, nil, apperr.Internal("minting token", err)
	}
	return &Session{Token: token, ExpiresAt: expiresAt}, employer, nil
}

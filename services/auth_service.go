package services

import (
	"context"
	"errors"
	"fmt"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/infra"
	"gin-tasktracker/models"
	"gin-tasktracker/repositories"
	"gin-tasktracker/security"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	Register(ctx context.Context, email string, password string) (*models.User, error)
	Create(ctx context.Context, email string, password string, isAdmin bool) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetAdmin(ctx context.Context, userID uint, isAdmin bool) (*models.User, error)
	Login(ctx context.Context, email string, password string) (string, error)
	Logout(ctx context.Context, tokenString string) error
	EnsureAdmin(ctx context.Context, email string, password string) error
}

// AuthService is the account directory plus the login and logout flows.
// It does not authorize callers; ListUsers and SetAdmin are guarded at
// the HTTP layer.
type AuthService struct {
	repository repositories.IUserRepository
	hasher     security.IPasswordHasher
	codec      security.ITokenCodec
	ledger     IRevocationLedger
	metrics    *infra.Metrics
	log        logrus.FieldLogger
}

func NewAuthService(
	repository repositories.IUserRepository,
	hasher security.IPasswordHasher,
	codec security.ITokenCodec,
	ledger IRevocationLedger,
	metrics *infra.Metrics,
	log logrus.FieldLogger,
) IAuthService {
	return &AuthService{
		repository: repository,
		hasher:     hasher,
		codec:      codec,
		ledger:     ledger,
		metrics:    metrics,
		log:        log,
	}
}

var errInvalidCredentials = fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrInvalidCredentials)

func (s *AuthService) Register(ctx context.Context, email string, password string) (*models.User, error) {
	return s.Create(ctx, email, password, false)
}

func (s *AuthService) Create(ctx context.Context, email string, password string, isAdmin bool) (*models.User, error) {
	existing, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, apperrors.ErrEmailTaken)
	}

	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		IsAdmin:      isAdmin,
	}
	// the unique index still catches a concurrent registration of the same email
	if err := s.repository.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "is_admin": isAdmin}).Info("Account created")
	return user, nil
}

// FindByEmail returns nil without error when no account has that email.
func (s *AuthService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repository.FindAll(ctx)
}

func (s *AuthService) SetAdmin(ctx context.Context, userID uint, isAdmin bool) (*models.User, error) {
	if err := s.repository.UpdateAdmin(ctx, userID, isAdmin); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"user_id": userID, "is_admin": isAdmin}).Info("Admin flag changed")
	return s.repository.FindByID(ctx, userID)
}

// Login returns the same error for an unknown email and a wrong password,
// and runs one bcrypt comparison in both cases.
func (s *AuthService) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		s.metrics.ObserveLogin("error")
		return "", err
	}

	hash := s.hasher.DummyHash()
	if user != nil {
		hash = user.PasswordHash
	}
	if !s.hasher.Verify(password, hash) || user == nil {
		s.metrics.ObserveLogin("invalid_credentials")
		return "", errInvalidCredentials
	}

	token, err := s.codec.Issue(user.Email)
	if err != nil {
		s.metrics.ObserveLogin("error")
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.ObserveLogin("success")
	return token, nil
}

// Logout revokes tokenString until its own expiry.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}

	if err := s.ledger.Revoke(ctx, tokenString, claims.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// EnsureAdmin seeds the default administrator on startup. Missing
// credentials only produce a warning.
func (s *AuthService) EnsureAdmin(ctx context.Context, email string, password string) error {
	if email == "" || password == "" {
		s.log.Warn("Admin credentials not set; skipping default admin")
		return nil
	}

	existing, err := s.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		s.log.WithField("user_id", existing.ID).Info("Admin user already exists")
		return nil
	}

	if _, err := s.Create(ctx, email, password, true); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}
	s.log.Info("Default admin user created")
	return nil
}

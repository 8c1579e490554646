package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/azurhotel/booking-backend/internal/auth"
	"github.com/azurhotel/booking-backend/internal/pkg/apperror"
)

// Service defines business logic related to back-office users.
type Service interface {
	Register(ctx context.Context, email, password, displayName string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	SetActive(ctx context.Context, id string, active bool) (*User, error)

	// EnsureAdmin guarantees an admin account with the given email exists.
	// Called at startup so a fresh deployment has a usable back office.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, email, password, displayName string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if len(password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "failed to process password")
	}

	var displayNamePtr *string
	if strings.TrimSpace(displayName) != "" {
		d := strings.TrimSpace(displayName)
		displayNamePtr = &d
	}

	u := &User{
		Email:        cleanEmail,
		PasswordHash: hash,
		DisplayName:  displayNamePtr,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	if !u.IsActive {
		return nil, ErrInactiveUser
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; do not fail login if the timestamp update fails.
	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		log.Warn().Err(err).Str("user_id", u.ID).Msg("failed to update last login")
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) SetActive(ctx context.Context, id string, active bool) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsActive = active
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) EnsureAdmin(ctx context.Context, email, password string) error {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" {
		return ErrEmailRequired
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		if u.IsAdmin {
			return nil
		}
		u.IsAdmin = true
		return s.repo.Update(ctx, u)
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to check existing admin: %w", err)
	}

	if len(password) < s.minPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return apperror.Wrap(err, http.StatusInternalServerError, "failed to process password")
	}

	u = &User{
		Email:        cleanEmail,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return err
	}

	log.Info().Str("email", cleanEmail).Msg("bootstrap admin created")
	return nil
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

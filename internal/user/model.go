package user

import (
	"net/http"
	"time"

	"github.com/azurhotel/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInactiveUser       = apperror.New(http.StatusUnauthorized, "user is inactive")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
)

// User represents a back-office account.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
	IsAdmin      bool
}

// Filter defines filter options for listing users.
type Filter struct {
	Email    string
	IsActive *bool // Pointer distinguishes "not set" from false

	Page     int
	PageSize int
}

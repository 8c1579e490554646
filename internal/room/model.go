package room

import (
	"net/http"
	"time"

	"github.com/azurhotel/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "room not found")
	ErrEmptyName   = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidType = apperror.New(http.StatusBadRequest, "invalid room type")
	ErrBadPrice    = apperror.New(http.StatusBadRequest, "nightly price must be positive")
	ErrBadCapacity = apperror.New(http.StatusBadRequest, "capacity must be at least 1")
	ErrEmptyPhoto  = apperror.New(http.StatusBadRequest, "photo path cannot be empty")
)

type RoomType string

const (
	TypeSingle RoomType = "single"
	TypeDouble RoomType = "double"
	TypeSuite  RoomType = "suite"
)

// Valid reports whether t is a known room type.
func (t RoomType) Valid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeSuite:
		return true
	}
	return false
}

// Room is the bookable unit of contention.
type Room struct {
	ID           string
	Name         string
	Type         RoomType
	NightlyPrice float64
	Capacity     int
	Description  string
	PhotoPath    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	Type      string
	Capacity  int
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

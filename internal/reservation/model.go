package reservation

import (
	"net/http"
	"time"

	"github.com/azurhotel/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "reservation not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrInvalidRange     = apperror.New(http.StatusBadRequest, "arrival date must be before departure date")
	ErrRoomUnavailable  = apperror.New(http.StatusConflict, "room is not available for the requested dates")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid reservation status")
	ErrStoreUnavailable = apperror.New(http.StatusServiceUnavailable, "reservation store is unavailable")
	ErrDuplicateCode    = apperror.New(http.StatusConflict, "confirmation code already in use")
	ErrBookingFailed    = apperror.New(http.StatusInternalServerError, "booking failed, please try again")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Reservation represents one guest's claim on one room for a continuous
// half-open date range [ArrivalDate, DepartureDate).
type Reservation struct {
	ID               string
	RoomID           string
	RoomName         string
	GuestName        string
	GuestEmail       string
	ArrivalDate      time.Time
	DepartureDate    time.Time
	Status           Status
	ConfirmationCode string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Filter defines parameters for listing reservations.
type Filter struct {
	RoomID      string
	GuestEmail  string
	Status      string
	ArrivalFrom *time.Time
	ArrivalTo   *time.Time
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

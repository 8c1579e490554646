package http

import (
	"time"

	"github.com/azurhotel/booking-backend/internal/pkg/request"
	"github.com/azurhotel/booking-backend/internal/reservation"
	roomHttp "github.com/azurhotel/booking-backend/internal/room/http"
)

// ListReservationsRequest defines query parameters for listing reservations.
type ListReservationsRequest struct {
	request.ListParams
	RoomID      string     `form:"room_id" binding:"omitempty,uuid"`
	GuestEmail  string     `form:"guest_email" binding:"omitempty,email"`
	Status      string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	ArrivalFrom *time.Time `form:"arrival_from" time_format:"2006-01-02"`
	ArrivalTo   *time.Time `form:"arrival_to" time_format:"2006-01-02"`
	SortBy      string     `form:"sort_by" binding:"omitempty,oneof=arrival_date departure_date created_at status"`
}

// Validate performs custom validation for ListReservationsRequest.
func (r *ListReservationsRequest) Validate() error {
	if r.ArrivalFrom != nil && r.ArrivalTo != nil {
		if r.ArrivalFrom.After(*r.ArrivalTo) {
			return reservation.ErrInvalidRange
		}
	}
	return nil
}

type ReservationResponse struct {
	ID               string           `json:"id"`
	Room             roomHttp.RoomTag `json:"room"`
	GuestName        string           `json:"guest_name"`
	GuestEmail       string           `json:"guest_email"`
	ArrivalDate      time.Time        `json:"arrival_date"`
	DepartureDate    time.Time        `json:"departure_date"`
	Status           string           `json:"status"`
	ConfirmationCode string           `json:"confirmation_code"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:               r.ID,
		Room:             roomHttp.RoomTag{ID: r.RoomID, Name: r.RoomName},
		GuestName:        r.GuestName,
		GuestEmail:       r.GuestEmail,
		ArrivalDate:      r.ArrivalDate,
		DepartureDate:    r.DepartureDate,
		Status:           string(r.Status),
		ConfirmationCode: r.ConfirmationCode,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

type CreateReservationRequest struct {
	RoomID        string `json:"room_id" binding:"required,uuid"`
	GuestName     string `json:"guest_name" binding:"required"`
	GuestEmail    string `json:"guest_email" binding:"required,email"`
	ArrivalDate   string `json:"arrival_date" binding:"required,datetime=2006-01-02"`
	DepartureDate string `json:"departure_date" binding:"required,datetime=2006-01-02"`
}

// Dates parses the arrival and departure dates as UTC midnights.
func (r *CreateReservationRequest) Dates() (arrival, departure time.Time, err error) {
	arrival, err = time.Parse("2006-01-02", r.ArrivalDate)
	if err != nil {
		return time.Time{}, time.Time{}, reservation.ErrInvalidRange
	}
	departure, err = time.Parse("2006-01-02", r.DepartureDate)
	if err != nil {
		return time.Time{}, time.Time{}, reservation.ErrInvalidRange
	}
	return arrival, departure, nil
}

type UpdateReservationRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

// AvailabilityRequest defines query parameters for the availability check.
type AvailabilityRequest struct {
	Arrival   time.Time `form:"arrival" binding:"required" time_format:"2006-01-02"`
	Departure time.Time `form:"departure" binding:"required" time_format:"2006-01-02"`
}

type AvailabilityResponse struct {
	RoomID    string    `json:"room_id"`
	Arrival   time.Time `json:"arrival"`
	Departure time.Time `json:"departure"`
	Available bool      `json:"available"`
}

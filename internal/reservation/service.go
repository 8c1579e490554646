package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/azurhotel/booking-backend/internal/room"
	"github.com/rs/zerolog/log"
)

// maxCodeRetries bounds how many times the booking flow regenerates the
// confirmation code after a collision before giving up.
const maxCodeRetries = 3

type CreateRequest struct {
	RoomID        string
	GuestName     string
	GuestEmail    string
	ArrivalDate   time.Time
	DepartureDate time.Time
}

type Service interface {
	// CheckAvailability reports whether the room is free for the half-open
	// interval [arrival, departure). It never caches; every call reads the
	// store fresh.
	CheckAvailability(ctx context.Context, roomID string, arrival, departure time.Time) (bool, error)

	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	GetByCode(ctx context.Context, code string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Reservation, error)
	Cancel(ctx context.Context, id string) (*Reservation, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	roomService room.Service
}

func NewService(repo Repository, roomService room.Service) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
	}
}

func (s *service) CheckAvailability(ctx context.Context, roomID string, arrival, departure time.Time) (bool, error) {
	return s.checkAvailability(ctx, roomID, arrival, departure, "")
}

// checkAvailability is the shared predicate behind CheckAvailability and the
// booking/status flows. excludeID lets a status transition ignore the
// reservation being modified.
func (s *service) checkAvailability(ctx context.Context, roomID string, arrival, departure time.Time, excludeID string) (bool, error) {
	if !arrival.Before(departure) {
		return false, ErrInvalidRange
	}

	existing, err := s.repo.ListByRoom(ctx, roomID)
	if err != nil {
		// Never guess availability on a store fault; surface it.
		return false, err
	}

	for _, r := range existing {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if conflicts(r, arrival, departure) {
			return false, nil
		}
	}
	return true, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	if !req.ArrivalDate.Before(req.DepartureDate) {
		return nil, ErrInvalidRange
	}

	if _, err := s.roomService.GetByID(ctx, req.RoomID); err != nil {
		switch {
		case errors.Is(err, room.ErrNotFound):
			return nil, ErrRoomNotFound
		default:
			return nil, err
		}
	}

	available, err := s.checkAvailability(ctx, req.RoomID, req.ArrivalDate, req.DepartureDate, "")
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrRoomUnavailable
	}

	res := &Reservation{
		RoomID:        req.RoomID,
		GuestName:     strings.TrimSpace(req.GuestName),
		GuestEmail:    strings.ToLower(strings.TrimSpace(req.GuestEmail)),
		ArrivalDate:   req.ArrivalDate,
		DepartureDate: req.DepartureDate,
		Status:        StatusPending,
	}

	// The insert enforces code uniqueness; regenerate on the rare collision.
	for attempt := 0; attempt < maxCodeRetries; attempt++ {
		res.ConfirmationCode = GenerateCode()

		err := s.repo.Create(ctx, res)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, ErrDuplicateCode) {
			log.Warn().
				Str("room_id", req.RoomID).
				Str("code", res.ConfirmationCode).
				Int("attempt", attempt+1).
				Msg("confirmation code collision, regenerating")
			continue
		}
		return nil, err
	}

	return nil, ErrBookingFailed
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByCode(ctx context.Context, code string) (*Reservation, error) {
	if !ValidCode(code) {
		return nil, ErrNotFound
	}
	return s.repo.GetByCode(ctx, code)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Reservation, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if res.Status == status {
		return res, nil
	}

	// A cancelled reservation stopped holding the room; bringing it back
	// requires the interval to still be free.
	if res.Status == StatusCancelled && status != StatusCancelled {
		available, err := s.checkAvailability(ctx, res.RoomID, res.ArrivalDate, res.DepartureDate, res.ID)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, ErrRoomUnavailable
		}
	}

	res.Status = status
	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Cancel is the guest-facing cancellation path: a status change, never a
// physical delete, so historical occupancy stays reportable.
func (s *service) Cancel(ctx context.Context, id string) (*Reservation, error) {
	return s.UpdateStatus(ctx, id, StatusCancelled)
}

// Delete purges the row entirely. Reserved for admin data-retention
// erasure; normal flows must Cancel instead.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

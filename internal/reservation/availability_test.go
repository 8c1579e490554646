package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func existingReservation(roomID string, arrival, departure time.Time, status Status) *Reservation {
	return &Reservation{
		RoomID:           roomID,
		ArrivalDate:      arrival,
		DepartureDate:    departure,
		Status:           status,
		ConfirmationCode: GenerateCode(),
	}
}

func TestCheckAvailability_EmptyRoom(t *testing.T) {
	svc := NewService(newFakeRepo(), stubRooms())

	available, err := svc.CheckAvailability(context.Background(), "room-1",
		date(2024, 6, 10), date(2024, 6, 15))
	require.NoError(t, err)
	require.True(t, available)
}

func TestCheckAvailability_Overlaps(t *testing.T) {
	// Existing confirmed stay [2024-06-10, 2024-06-15)
	existing := existingReservation("room-1",
		date(2024, 6, 10), date(2024, 6, 15), StatusConfirmed)

	tests := []struct {
		name      string
		arrival   time.Time
		departure time.Time
		want      bool
	}{
		{"contained", date(2024, 6, 12), date(2024, 6, 14), false},
		{"partial left", date(2024, 6, 8), date(2024, 6, 12), false},
		{"partial right", date(2024, 6, 13), date(2024, 6, 20), false},
		{"containing", date(2024, 6, 5), date(2024, 6, 20), false},
		{"arrival on existing departure", date(2024, 6, 15), date(2024, 6, 18), true},
		{"departure on existing arrival", date(2024, 6, 5), date(2024, 6, 10), true},
		{"disjoint before", date(2024, 6, 1), date(2024, 6, 5), true},
		{"disjoint after", date(2024, 6, 20), date(2024, 6, 25), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo(existing), stubRooms())

			available, err := svc.CheckAvailability(context.Background(), "room-1", tt.arrival, tt.departure)
			require.NoError(t, err)
			require.Equal(t, tt.want, available)
		})
	}
}

func TestCheckAvailability_StatusRules(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"pending blocks", StatusPending, false},
		{"confirmed blocks", StatusConfirmed, false},
		{"cancelled never blocks", StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := existingReservation("room-1",
				date(2024, 6, 10), date(2024, 6, 15), tt.status)
			svc := NewService(newFakeRepo(existing), stubRooms())

			available, err := svc.CheckAvailability(context.Background(), "room-1",
				date(2024, 6, 12), date(2024, 6, 14))
			require.NoError(t, err)
			require.Equal(t, tt.want, available)
		})
	}
}

func TestCheckAvailability_OtherRoomIgnored(t *testing.T) {
	existing := existingReservation("room-2",
		date(2024, 6, 10), date(2024, 6, 15), StatusConfirmed)
	svc := NewService(newFakeRepo(existing), stubRooms())

	available, err := svc.CheckAvailability(context.Background(), "room-1",
		date(2024, 6, 12), date(2024, 6, 14))
	require.NoError(t, err)
	require.True(t, available)
}

func TestCheckAvailability_InvalidRange(t *testing.T) {
	svc := NewService(newFakeRepo(), stubRooms())
	d := date(2024, 6, 10)

	tests := []struct {
		name      string
		arrival   time.Time
		departure time.Time
	}{
		{"zero-length stay", d, d},
		{"reversed dates", date(2024, 6, 15), d},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CheckAvailability(context.Background(), "room-1", tt.arrival, tt.departure)
			require.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestCheckAvailability_StoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = storeErr("list reservations by room", errors.New("connection refused"))
	svc := NewService(repo, stubRooms())

	_, err := svc.CheckAvailability(context.Background(), "room-1",
		date(2024, 6, 10), date(2024, 6, 15))
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestOverlaps(t *testing.T) {
	a := date(2024, 6, 10)
	d := date(2024, 6, 15)

	require.True(t, overlaps(a, d, date(2024, 6, 14), date(2024, 6, 20)))
	require.True(t, overlaps(a, d, date(2024, 6, 10), date(2024, 6, 15)))
	require.False(t, overlaps(a, d, d, date(2024, 6, 20)))
	require.False(t, overlaps(a, d, date(2024, 6, 5), a))
}

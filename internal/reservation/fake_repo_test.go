package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// fakeRepo is an in-memory Repository used to exercise the service without
// a database. listErr and createErr inject store faults.
type fakeRepo struct {
	reservations []*Reservation
	nextID       int

	listErr    error
	createErr  error
	updateErr  error
	dupAttempt int // fail the first N creates with ErrDuplicateCode
}

func newFakeRepo(seed ...*Reservation) *fakeRepo {
	r := &fakeRepo{nextID: 1}
	for _, res := range seed {
		r.add(res)
	}
	return r
}

func (f *fakeRepo) add(res *Reservation) {
	if res.ID == "" {
		res.ID = fmt.Sprintf("res-%d", f.nextID)
		f.nextID++
	}
	f.reservations = append(f.reservations, res)
}

func (f *fakeRepo) Create(ctx context.Context, res *Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.dupAttempt > 0 {
		f.dupAttempt--
		return ErrDuplicateCode
	}
	for _, existing := range f.reservations {
		if existing.ConfirmationCode == res.ConfirmationCode {
			return ErrDuplicateCode
		}
	}
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	f.add(res)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Reservation, error) {
	for _, res := range f.reservations {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) GetByCode(ctx context.Context, code string) (*Reservation, error) {
	for _, res := range f.reservations {
		if res.ConfirmationCode == code {
			return res, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	var out []*Reservation
	for _, res := range f.reservations {
		if filter.RoomID != "" && res.RoomID != filter.RoomID {
			continue
		}
		if filter.Status != "" && string(res.Status) != filter.Status {
			continue
		}
		if filter.GuestEmail != "" && !strings.EqualFold(res.GuestEmail, filter.GuestEmail) {
			continue
		}
		out = append(out, res)
	}
	return out, len(out), nil
}

func (f *fakeRepo) ListByRoom(ctx context.Context, roomID string) ([]*Reservation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*Reservation
	for _, res := range f.reservations {
		if res.RoomID == roomID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, res *Reservation) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, existing := range f.reservations {
		if existing.ID == res.ID {
			f.reservations[i] = res
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	for i, existing := range f.reservations {
		if existing.ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

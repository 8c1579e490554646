package room

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rooms  map[string]*Room
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rooms: make(map[string]*Room), nextID: 1}
}

func (f *fakeRepo) Create(ctx context.Context, r *Room) error {
	r.ID = fmt.Sprintf("room-%d", f.nextID)
	f.nextID++
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	f.rooms[r.ID] = r
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	var out []*Room
	for _, r := range f.rooms {
		if filter.Type != "" && string(r.Type) != filter.Type {
			continue
		}
		if filter.Capacity > 0 && r.Capacity < filter.Capacity {
			continue
		}
		out = append(out, r)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(ctx context.Context, r *Room) error {
	if _, ok := f.rooms[r.ID]; !ok {
		return ErrNotFound
	}
	f.rooms[r.ID] = r
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

func validRoom() CreateRequest {
	return CreateRequest{
		Name:         "Sea View 101",
		Type:         "double",
		NightlyPrice: 120,
		Capacity:     2,
		Description:  "Double room with a sea view.",
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(newFakeRepo())

	r, err := svc.Create(context.Background(), validRoom())
	require.NoError(t, err)
	require.NotEmpty(t, r.ID)
	require.Equal(t, TypeDouble, r.Type)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"empty name", func(r *CreateRequest) { r.Name = "   " }, ErrEmptyName},
		{"unknown type", func(r *CreateRequest) { r.Type = "penthouse" }, ErrInvalidType},
		{"zero price", func(r *CreateRequest) { r.NightlyPrice = 0 }, ErrBadPrice},
		{"zero capacity", func(r *CreateRequest) { r.Capacity = 0 }, ErrBadCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo())
			req := validRoom()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdate(t *testing.T) {
	svc := NewService(newFakeRepo())

	r, err := svc.Create(context.Background(), validRoom())
	require.NoError(t, err)

	newName := "Sea View 102"
	newPrice := 150.0
	updated, err := svc.Update(context.Background(), r.ID, UpdateRequest{
		Name:         &newName,
		NightlyPrice: &newPrice,
	})
	require.NoError(t, err)
	require.Equal(t, newName, updated.Name)
	require.Equal(t, newPrice, updated.NightlyPrice)
	require.Equal(t, TypeDouble, updated.Type)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	name := "whatever"
	_, err := svc.Update(context.Background(), "missing", UpdateRequest{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetPhoto(t *testing.T) {
	svc := NewService(newFakeRepo())

	r, err := svc.Create(context.Background(), validRoom())
	require.NoError(t, err)

	updated, err := svc.SetPhoto(context.Background(), r.ID, "rooms/room-1/photo.jpg")
	require.NoError(t, err)
	require.NotNil(t, updated.PhotoPath)
	require.Equal(t, "rooms/room-1/photo.jpg", *updated.PhotoPath)
}

func TestDelete(t *testing.T) {
	svc := NewService(newFakeRepo())

	r, err := svc.Create(context.Background(), validRoom())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), r.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), r.ID), ErrNotFound)
}

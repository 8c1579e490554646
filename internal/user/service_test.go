package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/azurhotel/booking-backend/internal/auth"
)

type fakeRepo struct {
	users  map[string]*User // keyed by email
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User), nextID: 1}
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) Create(ctx context.Context, u *User) error {
	if _, ok := f.users[u.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	u.CreatedAt = time.Now().UTC()
	f.users[u.Email] = u
	return nil
}

func (f *fakeRepo) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	u, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.LastLoginAt = &t
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(ctx context.Context, u *User) error {
	for _, existing := range f.users {
		if existing.ID == u.ID {
			f.users[existing.Email] = u
			return nil
		}
	}
	return ErrNotFound
}

// Low cost keeps the bcrypt work factor cheap in tests.
func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(4)), repo
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), "  Admin@Hotel.Example ", "correct horse", "Admin")
	require.NoError(t, err)
	require.Equal(t, "admin@hotel.example", u.Email)
	require.NotEqual(t, "correct horse", u.PasswordHash)
	require.True(t, u.IsActive)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "   ", "correct horse", "")
	require.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Register(context.Background(), "a@b.example", "short", "")
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "a@b.example", "correct horse", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "A@B.example", "correct horse", "")
	require.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService()

	u, err := svc.Register(context.Background(), "a@b.example", "correct horse", "")
	require.NoError(t, err)

	got, err := svc.Login(context.Background(), "a@b.example", "correct horse")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.NotNil(t, repo.users["a@b.example"].LastLoginAt)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "a@b.example", "correct horse", "")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@b.example", "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@b.example", "correct horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdmin(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.EnsureAdmin(context.Background(), "Admin@Hotel.Example", "correct horse"))
	u := repo.users["admin@hotel.example"]
	require.NotNil(t, u)
	require.True(t, u.IsAdmin)

	// Idempotent on an existing admin.
	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@hotel.example", "correct horse"))

	// Promotes an existing non-admin user.
	staff, err := svc.Register(context.Background(), "staff@hotel.example", "correct horse", "")
	require.NoError(t, err)
	require.False(t, staff.IsAdmin)
	require.NoError(t, svc.EnsureAdmin(context.Background(), "staff@hotel.example", "ignored-password"))
	require.True(t, repo.users["staff@hotel.example"].IsAdmin)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), "a@b.example", "correct horse", "")
	require.NoError(t, err)

	_, err = svc.SetActive(context.Background(), u.ID, false)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@b.example", "correct horse")
	require.ErrorIs(t, err, ErrInactiveUser)
}

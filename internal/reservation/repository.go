package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	GetByCode(ctx context.Context, code string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	Update(ctx context.Context, res *Reservation) error
	Delete(ctx context.Context, id string) error

	// ListByRoom returns every stored reservation for the room, including
	// cancelled ones. Filtering cancelled rows out is the caller's job.
	ListByRoom(ctx context.Context, roomID string) ([]*Reservation, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// storeErr wraps infrastructure failures so callers can match
// ErrStoreUnavailable without losing the cause.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("room_id", "guest_name", "guest_email", "arrival_date", "departure_date", "status", "confirmation_code").
		Values(res.RoomID, res.GuestName, res.GuestEmail, res.ArrivalDate, res.DepartureDate, res.Status, res.ConfirmationCode).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return ErrDuplicateCode
			case pgerrcode.ExclusionViolation:
				// The no_overlap constraint closes the check-then-insert
				// race: a concurrent insert won the room first.
				return ErrRoomUnavailable
			case pgerrcode.ForeignKeyViolation:
				return ErrRoomNotFound
			}
		}
		return storeErr("create reservation", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return r.getByColumn(ctx, "r.id", id)
}

func (r *pgxRepository) GetByCode(ctx context.Context, code string) (*Reservation, error) {
	return r.getByColumn(ctx, "r.confirmation_code", code)
}

func (r *pgxRepository) getByColumn(ctx context.Context, column, value string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"r.id", "r.room_id", "rm.name",
		"r.guest_name", "r.guest_email",
		"r.arrival_date", "r.departure_date", "r.status", "r.confirmation_code",
		"r.created_at", "r.updated_at",
	).
		From("public.reservations r").
		Join("public.rooms rm ON r.room_id = rm.id").
		Where(squirrel.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var res Reservation
	if err := row.Scan(
		&res.ID, &res.RoomID, &res.RoomName,
		&res.GuestName, &res.GuestEmail,
		&res.ArrivalDate, &res.DepartureDate, &res.Status, &res.ConfirmationCode,
		&res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get reservation", err)
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.room_id", "rm.name",
		"r.guest_name", "r.guest_email",
		"r.arrival_date", "r.departure_date", "r.status", "r.confirmation_code",
		"r.created_at", "r.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.reservations r").
		Join("public.rooms rm ON r.room_id = rm.id")

	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"r.room_id": filter.RoomID})
	}
	if filter.GuestEmail != "" {
		query = query.Where(squirrel.Eq{"r.guest_email": filter.GuestEmail})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": filter.Status})
	}
	if filter.ArrivalFrom != nil {
		query = query.Where(squirrel.GtOrEq{"r.arrival_date": filter.ArrivalFrom})
	}
	if filter.ArrivalTo != nil {
		query = query.Where(squirrel.LtOrEq{"r.arrival_date": filter.ArrivalTo})
	}

	orderBy := "r.arrival_date"
	if filter.SortBy != "" {
		orderBy = "r." + filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, storeErr("list reservations", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int

	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.RoomID, &res.RoomName,
			&res.GuestName, &res.GuestEmail,
			&res.ArrivalDate, &res.DepartureDate, &res.Status, &res.ConfirmationCode,
			&res.CreatedAt, &res.UpdatedAt, &total,
		); err != nil {
			return nil, 0, storeErr("scan reservation", err)
		}
		reservations = append(reservations, &res)
	}

	return reservations, total, nil
}

func (r *pgxRepository) ListByRoom(ctx context.Context, roomID string) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(
		"id", "room_id", "guest_name", "guest_email",
		"arrival_date", "departure_date", "status", "confirmation_code",
		"created_at", "updated_at",
	).
		From("public.reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("arrival_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by room query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, storeErr("list reservations by room", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.RoomID, &res.GuestName, &res.GuestEmail,
			&res.ArrivalDate, &res.DepartureDate, &res.Status, &res.ConfirmationCode,
			&res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, storeErr("scan reservation", err)
		}
		reservations = append(reservations, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list reservations by room", err)
	}

	return reservations, nil
}

func (r *pgxRepository) Update(ctx context.Context, res *Reservation) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", res.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrRoomUnavailable
		}
		return storeErr("update reservation", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return storeErr("delete reservation", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, r *Room) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, room *Room) error {
	const query = `
		INSERT INTO public.rooms (name, room_type, nightly_price, capacity, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, room.Name, room.Type, room.NightlyPrice, room.Capacity, room.Description).
		Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create room failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	const query = `
		SELECT id, name, room_type, nightly_price, capacity, description, photo_path, created_at, updated_at
		FROM public.rooms
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var room Room
	if err := row.Scan(
		&room.ID, &room.Name, &room.Type, &room.NightlyPrice, &room.Capacity,
		&room.Description, &room.PhotoPath, &room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &room, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "room_type", "nightly_price", "capacity",
		"description", "photo_path", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).From("public.rooms")

	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"room_type": filter.Type})
	}
	if filter.Capacity > 0 {
		query = query.Where(squirrel.GtOrEq{"capacity": filter.Capacity})
	}

	orderBy := "name"
	if filter.SortBy != "" {
		orderBy = filter.SortBy
	}
	orderDir := "ASC"
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
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int

	for rows.Next() {
		var room Room
		if err := rows.Scan(
			&room.ID, &room.Name, &room.Type, &room.NightlyPrice, &room.Capacity,
			&room.Description, &room.PhotoPath, &room.CreatedAt, &room.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, room *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.rooms").
		Set("name", room.Name).
		Set("room_type", room.Type).
		Set("nightly_price", room.NightlyPrice).
		Set("capacity", room.Capacity).
		Set("description", room.Description).
		Set("photo_path", room.PhotoPath).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.rooms WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

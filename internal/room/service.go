package room

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name         string
	Type         string
	NightlyPrice float64
	Capacity     int
	Description  string
}

type UpdateRequest struct {
	Name         *string
	Type         *string
	NightlyPrice *float64
	Capacity     *int
	Description  *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	SetPhoto(ctx context.Context, id string, photoPath string) (*Room, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	rt := RoomType(req.Type)
	if !rt.Valid() {
		return nil, ErrInvalidType
	}
	if req.NightlyPrice <= 0 {
		return nil, ErrBadPrice
	}
	if req.Capacity < 1 {
		return nil, ErrBadCapacity
	}

	r := &Room{
		Name:         strings.TrimSpace(req.Name),
		Type:         rt,
		NightlyPrice: req.NightlyPrice,
		Capacity:     req.Capacity,
		Description:  req.Description,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		r.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		rt := RoomType(*req.Type)
		if !rt.Valid() {
			return nil, ErrInvalidType
		}
		r.Type = rt
	}
	if req.NightlyPrice != nil {
		if *req.NightlyPrice <= 0 {
			return nil, ErrBadPrice
		}
		r.NightlyPrice = *req.NightlyPrice
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrBadCapacity
		}
		r.Capacity = *req.Capacity
	}
	if req.Description != nil {
		r.Description = *req.Description
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) SetPhoto(ctx context.Context, id string, photoPath string) (*Room, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if photoPath == "" {
		return nil, ErrEmptyPhoto
	}
	r.PhotoPath = &photoPath
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

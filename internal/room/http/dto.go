package http

import (
	"time"

	"github.com/azurhotel/booking-backend/internal/pkg/request"
	"github.com/azurhotel/booking-backend/internal/room"
)

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
	Type     string `form:"type" binding:"omitempty,oneof=single double suite"`
	Capacity int    `form:"capacity" binding:"omitempty,min=1"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=name room_type nightly_price capacity created_at"`
}

// RoomResponse is the shape of room data returned in API responses.
type RoomResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	NightlyPrice float64   `json:"nightly_price"`
	Capacity     int       `json:"capacity"`
	Description  string    `json:"description"`
	PhotoPath    *string   `json:"photo_path"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoomTag is a brief representation of a room.
type RoomTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:           r.ID,
		Name:         r.Name,
		Type:         string(r.Type),
		NightlyPrice: r.NightlyPrice,
		Capacity:     r.Capacity,
		Description:  r.Description,
		PhotoPath:    r.PhotoPath,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type CreateRoomRequest struct {
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=single double suite"`
	NightlyPrice float64 `json:"nightly_price" binding:"required,gt=0"`
	Capacity     int     `json:"capacity" binding:"required,min=1"`
	Description  string  `json:"description"`
}

type UpdateRoomRequest struct {
	Name         *string  `json:"name"`
	Type         *string  `json:"type" binding:"omitempty,oneof=single double suite"`
	NightlyPrice *float64 `json:"nightly_price" binding:"omitempty,gt=0"`
	Capacity     *int     `json:"capacity" binding:"omitempty,min=1"`
	Description  *string  `json:"description"`
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azurhotel/booking-backend/internal/pkg/request"
	"github.com/azurhotel/booking-backend/internal/pkg/response"
	"github.com/azurhotel/booking-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

// CheckAvailability answers whether a room is free for [arrival, departure).
func (h *Handler) CheckAvailability(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), uri.ID, req.Arrival, req.Departure)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		RoomID:    uri.ID,
		Arrival:   req.Arrival,
		Departure: req.Departure,
		Available: available,
	})
}

// Create books a room for a guest. Public endpoint; no account needed.
func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	arrival, departure, err := body.Dates()
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		RoomID:        body.RoomID,
		GuestName:     body.GuestName,
		GuestEmail:    body.GuestEmail,
		ArrivalDate:   arrival,
		DepartureDate: departure,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

// GetByCode lets a guest look up their reservation by confirmation code.
func (h *Handler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation code is required"})
		return
	}

	res, err := h.service.GetByCode(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

// CancelByCode lets a guest cancel their reservation by confirmation code.
func (h *Handler) CancelByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation code is required"})
		return
	}

	res, err := h.service.GetByCode(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	cancelled, err := h.service.Cancel(c.Request.Context(), res.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(cancelled))
}

// List returns reservations for the back-office. Admin only.
func (h *Handler) List(c *gin.Context) {
	var req ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	filter := reservation.Filter{
		RoomID:      req.RoomID,
		GuestEmail:  req.GuestEmail,
		Status:      req.Status,
		ArrivalFrom: req.ArrivalFrom,
		ArrivalTo:   req.ArrivalTo,
		Page:        req.Page,
		PageSize:    req.PageSize,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
	}

	reservations, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = NewReservationResponse(r)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// Get returns a reservation by ID. Admin only.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

// UpdateStatus transitions a reservation's status. Admin only.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.UpdateStatus(c.Request.Context(), uri.ID, reservation.Status(body.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

// Delete purges a reservation row. Admin only; reserved for data-retention
// erasure, normal flows should cancel instead.
func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

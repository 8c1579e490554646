package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/azurhotel/booking-backend/internal/pkg/request"
	"github.com/azurhotel/booking-backend/internal/pkg/response"
	"github.com/azurhotel/booking-backend/internal/pkg/storage"
	"github.com/azurhotel/booking-backend/internal/room"
)

const (
	maxPhotoSize   = 10 << 20 // 10 MiB
	thumbMaxWidth  = 640
	thumbMaxHeight = 480
)

type Handler struct {
	service   room.Service
	store     storage.Storage
	processor *storage.ImageProcessor
}

func NewHandler(service room.Service, store storage.Storage, processor *storage.ImageProcessor) *Handler {
	return &Handler{
		service:   service,
		store:     store,
		processor: processor,
	}
}

func (h *Handler) List(c *gin.Context) {
	var req ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	filter := room.Filter{
		Type:      req.Type,
		Capacity:  req.Capacity,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	rooms, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewRoomResponse(r)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Create(c.Request.Context(), room.CreateRequest{
		Name:         body.Name,
		Type:         body.Type,
		NightlyPrice: body.NightlyPrice,
		Capacity:     body.Capacity,
		Description:  body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRoomResponse(r))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	r, err := h.service.Update(c.Request.Context(), uri.ID, room.UpdateRequest{
		Name:         body.Name,
		Type:         body.Type,
		NightlyPrice: body.NightlyPrice,
		Capacity:     body.Capacity,
		Description:  body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

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

// UploadPhoto stores the room photo and a JPEG thumbnail, then records the
// photo path on the room.
func (h *Handler) UploadPhoto(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo exceeds size limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported photo format"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer src.Close()

	ctx := c.Request.Context()
	photoPath := fmt.Sprintf("rooms/%s/%s%s", uri.ID, uuid.NewString(), ext)

	// Buffer the upload so we can both save the original and thumbnail it.
	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	if err := h.store.Save(ctx, photoPath, bytes.NewReader(content)); err != nil {
		response.Error(c, err)
		return
	}

	thumb, err := h.processor.GenerateThumbnail(bytes.NewReader(content), thumbMaxWidth, thumbMaxHeight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image file"})
		return
	}
	thumbPath := photoPath + "_thumb.jpg"
	if err := h.store.Save(ctx, thumbPath, thumb); err != nil {
		response.Error(c, err)
		return
	}

	r, err := h.service.SetPhoto(ctx, uri.ID, photoPath)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

// ServePhoto streams the stored room photo (or its thumbnail with ?thumb=1).
func (h *Handler) ServePhoto(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if r.PhotoPath == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room has no photo"})
		return
	}

	path := *r.PhotoPath
	contentType := "image/jpeg"
	if c.Query("thumb") == "1" {
		path += "_thumb.jpg"
	} else if strings.HasSuffix(path, ".png") {
		contentType = "image/png"
	}

	stream, err := h.store.Get(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
		return
	}
	defer stream.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started; nothing useful to send.
		return
	}
}

package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Availability lives under the room path; it is read-only and public.
	g.GET("/rooms/:id/availability", h.CheckAvailability)

	group := g.Group("/reservations")

	// === Public Routes (guest booking flow) ===
	group.POST("", h.Create)
	group.GET("/code/:code", h.GetByCode)
	group.POST("/code/:code/cancel", h.CancelByCode)

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.PATCH("/:id", h.UpdateStatus)
		admin.DELETE("/:id", h.Delete)
	}
}

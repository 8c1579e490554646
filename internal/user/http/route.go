package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", authMiddleware, adminMiddleware, h.Register)
		authGroup.GET("/me", authMiddleware, h.Me)
	}

	userGroup := g.Group("/users")
	userGroup.Use(authMiddleware, adminMiddleware)
	{
		userGroup.GET("", h.List)
		userGroup.PATCH("/:id/active", h.SetActive)
	}
}

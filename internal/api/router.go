package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/azurhotel/booking-backend/internal/auth"
	"github.com/azurhotel/booking-backend/internal/pkg/storage"
	"github.com/azurhotel/booking-backend/internal/reservation"
	resHttp "github.com/azurhotel/booking-backend/internal/reservation/http"
	"github.com/azurhotel/booking-backend/internal/room"
	roomHttp "github.com/azurhotel/booking-backend/internal/room/http"
	"github.com/azurhotel/booking-backend/internal/user"
	userHttp "github.com/azurhotel/booking-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	UserService        user.Service
	RoomService        room.Service
	ReservationService reservation.Service
	PhotoStorage       storage.Storage
	ImageProcessor     *storage.ImageProcessor
	JWTManager         *auth.JWTManager
}

// NewRouter assembles middleware (CORS, recovery, request logging, auth)
// and registers the routes of every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	roomHandler := roomHttp.NewHandler(cfg.RoomService, cfg.PhotoStorage, cfg.ImageProcessor)
	reservationHandler := resHttp.NewHandler(cfg.ReservationService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		resHttp.RegisterRoutes(v1, reservationHandler, authMiddleware, adminMiddleware)
	}

	return r
}

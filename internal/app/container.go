package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azurhotel/booking-backend/internal/api"
	"github.com/azurhotel/booking-backend/internal/auth"
	"github.com/azurhotel/booking-backend/internal/pkg/storage"
	"github.com/azurhotel/booking-backend/internal/reservation"
	"github.com/azurhotel/booking-backend/internal/room"
	"github.com/azurhotel/booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	DBPool           *pgxpool.Pool
	JWTSecret        string
	JWTTTL           time.Duration
	BcryptCost       int
	PhotoStoragePath string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router      *gin.Engine
	JWTManager  *auth.JWTManager
	UserService user.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	photoStorage, err := storage.NewLocalStorage(cfg.PhotoStoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init photo storage: %w", err)
	}
	imageProcessor := storage.NewImageProcessor()

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(reservationRepo, roomService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		UserService:        userService,
		RoomService:        roomService,
		ReservationService: reservationService,
		PhotoStorage:       photoStorage,
		ImageProcessor:     imageProcessor,
		JWTManager:         jwtManager,
	})

	return &Container{
		Router:      router,
		JWTManager:  jwtManager,
		UserService: userService,
	}, nil
}

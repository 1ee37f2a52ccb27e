package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/logger"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/hotel"
	"hotelbooking/internal/modules/rating"
	"hotelbooking/internal/modules/room"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", "error", err)
	}
	if err := repository.Migrate(db); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	hotelHandler := hotel.NewHandler(hotel.NewService(hotelRepo, ratingRepo, userRepo))
	roomHandler := room.NewHandler(room.NewService(roomRepo, hotelRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, userRepo, hotelRepo, roomRepo))
	ratingHandler := rating.NewHandler(rating.NewService(ratingRepo, bookingRepo))

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterRoutes(protected)
			hotelHandler.RegisterRoutes(protected)
			roomHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			ratingHandler.RegisterRoutes(protected)
		}
	}

	logger.Get().Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

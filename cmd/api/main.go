package main

import (
	"eventspace/internal/config"
	"eventspace/internal/database"
	"eventspace/internal/middleware"
	"eventspace/internal/modules/admin"
	"eventspace/internal/modules/announcement"
	"eventspace/internal/modules/auth"
	"eventspace/internal/modules/booking"
	"eventspace/internal/modules/catalog"
	"eventspace/internal/modules/events"
	"eventspace/internal/modules/registration"
	jwtsvc "eventspace/internal/pkg/jwt"
	"eventspace/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := repository.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	eventRepo := repository.NewEventRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	eventsHandler := events.NewHandler(events.NewService(eventRepo, registrationRepo, categoryRepo))
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewStore(db)))
	registrationHandler := registration.NewHandler(registration.NewService(registrationRepo, eventRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(roomRepo, equipmentRepo, categoryRepo, catalog.NewUsageCounter(db)))
	adminHandler := admin.NewHandler(admin.NewService(admin.NewStore(db), userRepo))
	announcementHandler := announcement.NewHandler(announcement.NewService(announcementRepo))

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			eventsHandler.RegisterPublicRoutes(protected)
			catalogHandler.RegisterPublicRoutes(protected)

			creators := protected.Group("/")
			creators.Use(middleware.CreatorsOnly())
			{
				eventsHandler.RegisterCreatorRoutes(creators)
				bookingHandler.RegisterRoutes(creators)
			}

			students := protected.Group("/")
			students.Use(middleware.StudentOnly())
			{
				registrationHandler.RegisterRoutes(students)
			}

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
				catalogHandler.RegisterAdminRoutes(adminGroup)
				announcementHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	log.WithField("addr", cfg.HTTPAddr).Info("starting server")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

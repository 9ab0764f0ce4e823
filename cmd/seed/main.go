package main

import (
	"context"
	"errors"
	"os"

	"eventspace/internal/config"
	"eventspace/internal/database"
	"eventspace/internal/domain"
	"eventspace/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the reference data a fresh install needs: the admin account,
// rooms, equipment and event categories. Safe to run more than once.
func main() {
	_ = godotenv.Load()

	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := repository.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	ctx := context.Background()

	adminID := seedAdmin(ctx, log, db)
	seedRooms(ctx, log, db)
	seedEquipment(ctx, log, db)
	seedCategories(ctx, log, db, adminID)

	log.Info("seed complete")
}

func seedAdmin(ctx context.Context, log *logrus.Logger, db *gorm.DB) string {
	users := repository.NewUserRepository(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@eventspace.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		log.WithField("email", email).Info("admin already exists")
		return existing.ID
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithError(err).Fatal("failed to look up admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("failed to hash admin password")
	}

	admin := &domain.User{
		ID:            uuid.NewString(),
		Name:          "Administrator",
		Email:         email,
		PasswordHash:  string(hash),
		Role:          domain.RoleAdmin,
		AccountStatus: domain.AccountActive,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.WithError(err).Fatal("failed to create admin")
	}
	log.WithField("email", email).Info("admin created")
	return admin.ID
}

func seedRooms(ctx context.Context, log *logrus.Logger, db *gorm.DB) {
	rooms := repository.NewRoomRepository(db)

	existing, err := rooms.List(ctx, false)
	if err != nil {
		log.WithError(err).Fatal("failed to list rooms")
	}
	if len(existing) > 0 {
		log.Info("rooms already seeded")
		return
	}

	for _, r := range []domain.Room{
		{Name: "Main Auditorium", Capacity: 300, Location: "Building A, Floor 1", RoomType: "auditorium", IsActive: true},
		{Name: "Lecture Hall 204", Capacity: 120, Location: "Building B, Floor 2", RoomType: "lecture_hall", IsActive: true},
		{Name: "Seminar Room 310", Capacity: 40, Location: "Building B, Floor 3", RoomType: "seminar", IsActive: true},
		{Name: "Open Courtyard", Capacity: 500, Location: "Central Campus", RoomType: "outdoor", IsActive: true},
	} {
		room := r
		if err := rooms.Create(ctx, &room); err != nil {
			log.WithError(err).WithField("room", room.Name).Fatal("failed to seed room")
		}
	}
	log.Info("rooms seeded")
}

func seedEquipment(ctx context.Context, log *logrus.Logger, db *gorm.DB) {
	equipment := repository.NewEquipmentRepository(db)

	existing, err := equipment.List(ctx)
	if err != nil {
		log.WithError(err).Fatal("failed to list equipment")
	}
	if len(existing) > 0 {
		log.Info("equipment already seeded")
		return
	}

	for _, e := range []domain.Equipment{
		{Name: "Projector", TotalStock: 10},
		{Name: "Wireless Microphone", TotalStock: 20},
		{Name: "Speaker Set", TotalStock: 8},
		{Name: "Folding Chair", TotalStock: 200},
	} {
		item := e
		if err := equipment.Create(ctx, &item); err != nil {
			log.WithError(err).WithField("equipment", item.Name).Fatal("failed to seed equipment")
		}
	}
	log.Info("equipment seeded")
}

func seedCategories(ctx context.Context, log *logrus.Logger, db *gorm.DB, adminID string) {
	categories := repository.NewCategoryRepository(db)

	for _, name := range []string{"Academic", "Cultural", "Sports", "Workshop"} {
		existing, err := categories.FindByNameFold(ctx, name, 0)
		if err != nil {
			log.WithError(err).Fatal("failed to look up category")
		}
		if existing != nil {
			continue
		}
		if err := categories.Create(ctx, &domain.Category{Name: name, CreatedByAdminID: adminID}); err != nil {
			log.WithError(err).WithField("category", name).Fatal("failed to seed category")
		}
	}
	log.Info("categories seeded")
}

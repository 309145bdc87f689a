package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"titlehub/internal/auth"
	"titlehub/internal/config"
	"titlehub/internal/db"
	"titlehub/internal/model"
	"titlehub/internal/repository"
)

var defaultContactTypes = []string{
	"Lender",
	"Buyer",
	"Seller",
	"Attorney",
	"Real Estate Agent",
	"Title Company",
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.ContactType{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	admin, err := seedAdmin(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, err := seedContactTypes(ctx, gormDB, admin.ID)
	if err != nil {
		log.Fatalf("Failed to seed contact types: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin user: %s", admin.Email)
	log.Printf("  - Contact types created: %d", created)
}

// seedAdmin creates the bootstrap admin account unless one already exists for
// the configured email. Credentials come from SEED_ADMIN_* so real passwords
// never end up in the repo.
func seedAdmin(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	email := getEnv("SEED_ADMIN_EMAIL", "admin@titlehub.local")
	password := getEnv("SEED_ADMIN_PASSWORD", "changeme-now")

	existing, err := repo.FindByEmailOrPhone(ctx, email)
	if err == nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Name:         getEnv("SEED_ADMIN_NAME", "Administrator"),
		Email:        email,
		Phone:        getEnv("SEED_ADMIN_PHONE", "000-000-0000"),
		Role:         model.RoleAdmin,
		PasswordHash: hashed,
		Status:       model.StatusActive,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	log.Printf("Created admin user %s", email)
	return admin, nil
}

// seedContactTypes inserts the baseline taxonomy, skipping slugs that exist.
func seedContactTypes(ctx context.Context, gormDB *gorm.DB, adminID uint) (int, error) {
	typeRepo := repository.NewContactTypeRepository(gormDB)
	created := 0

	for _, name := range defaultContactTypes {
		ct := &model.ContactType{
			ContactType: name,
			Slug:        slug.Make(name),
			UserID:      adminID,
		}
		if err := typeRepo.Create(ctx, ct); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

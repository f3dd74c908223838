package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"kunstbeheer/internal/auth"
	"kunstbeheer/internal/config"
	"kunstbeheer/internal/db"
	"kunstbeheer/internal/model"
	"kunstbeheer/internal/repository"
)

// defaultTypes is the initial artwork type list for a fresh database.
var defaultTypes = []string{"Schilderij", "Sculptuur", "Fotografie", "Tekening", "Grafiek"}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Artist{},
		&model.Location{},
		&model.ArtworkType{},
		&model.Artwork{},
		&model.ArtworkImage{},
		&model.ArtworkAttachment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	created, err := seedAdmin(ctx, repository.NewUserRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if created {
		log.Println("Admin user created")
	} else {
		log.Println("Admin user already present")
	}

	typeRepo := repository.NewArtworkTypeRepository(gormDB)
	seeded := 0
	for _, name := range defaultTypes {
		if _, err := typeRepo.FindByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check type %q: %v", name, err)
		}
		if err := typeRepo.Create(ctx, &model.ArtworkType{Name: name}); err != nil {
			log.Fatalf("Failed to create type %q: %v", name, err)
		}
		seeded++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Artwork types created: %d", seeded)
}

// seedAdmin creates the initial admin account when no user owns the
// configured email yet. Password comes from ADMIN_PASSWORD so it never ends
// up in code or logs.
func seedAdmin(ctx context.Context, users repository.UserRepository) (bool, error) {
	email := envOr("ADMIN_EMAIL", "admin@kunstbeheer.local")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		generated, err := auth.GenerateTempPassword()
		if err != nil {
			return false, err
		}
		password = generated
		log.Printf("ADMIN_PASSWORD not set, generated: %s", password)
	}

	if _, err := users.FindByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	return true, users.Create(ctx, &model.User{
		Name:         "Beheerder",
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Active:       true,
	})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"gallery-backend/internal/config"
	"gallery-backend/internal/domains/admin/model"
	"gallery-backend/internal/domains/admin/repository"
	"gallery-backend/internal/infrastructure/database"
)

const bcryptCost = 12

// Seeds (or resets) the backoffice admin account. Safe to run repeatedly;
// the account is upserted by email.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	name := flag.String("name", envOr("ADMIN_NAME", "Admin"), "admin display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required (flags or ADMIN_EMAIL / ADMIN_PASSWORD)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcryptCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	repo := repository.NewPostgresRepository(db.Pool)
	admin, err := repo.Upsert(ctx, &model.Admin{
		Email:    strings.ToLower(strings.TrimSpace(*email)),
		Name:     *name,
		Password: string(hash),
	})
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	log.Printf("admin account ready: %s (%s)", admin.Email, admin.ID)
}

func envOr(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

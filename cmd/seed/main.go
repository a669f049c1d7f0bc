package main

import (
	"context"
	"log"
	"os"
	"time"

	"go-investment-backend/config"
	"go-investment-backend/internal/domain"
	"go-investment-backend/internal/repository/postgres"
	"go-investment-backend/pkg/database"
	"go-investment-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// salesCategories is the fixed classification list for the internal
// sales-admin store, in display order
var salesCategories = []string{
	"عقاري",
	"تجاري",
	"لوجستي",
	"ضيافة",
	"صناعي",
}

// Seeds the internal sales-admin store: the category list and the super-admin
// account, each skipped when already present. Safe to run repeatedly.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	if cfg.DBUrl == "" {
		logger.Log.Error("DATABASE_URL is required for seeding")
		os.Exit(1)
	}
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		logger.Log.Error("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required for seeding")
		os.Exit(1)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repo := postgres.NewSeedRepository(dbPool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedCategories(ctx, repo); err != nil {
		logger.Log.Error("Category seeding failed", "error", err)
		os.Exit(1)
	}
	if err := seedSuperAdmin(ctx, repo, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		logger.Log.Error("Super-admin seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("Seeding complete")
}

func seedCategories(ctx context.Context, repo domain.SeedRepository) error {
	for i, name := range salesCategories {
		exists, err := repo.CategoryExists(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			logger.Log.Info("Category already present - skipping", "name", name)
			continue
		}
		category := &domain.SalesCategory{
			ID:        uuid.NewString(),
			Name:      name,
			SortOrder: i + 1,
		}
		if err := repo.InsertCategory(ctx, category); err != nil {
			return err
		}
		logger.Log.Info("Category inserted", "name", name)
	}
	return nil
}

func seedSuperAdmin(ctx context.Context, repo domain.SeedRepository, email, password string) error {
	exists, err := repo.AdminExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		logger.Log.Info("Super-admin already present - skipping", "email", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	user := &domain.AdminUser{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         "super_admin",
	}
	if err := repo.InsertAdmin(ctx, user); err != nil {
		return err
	}
	logger.Log.Info("Super-admin inserted", "email", email)
	return nil
}

package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"quizmaster/internal/config"
)

const (
	adminName     = "Admin User"
	adminEmail    = "admin@quizmaster.com"
	adminPassword = "admin123"
)

// SeedAdmin creates the default admin account when it does not exist yet.
func SeedAdmin(ctx context.Context, repo Repository) error {
	log := config.WithContext(ctx)

	existing, err := repo.FindByEmail(adminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Debug("Admin user already exists, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := repo.Create(&User{
		Name:     adminName,
		Email:    adminEmail,
		Password: string(hash),
	}); err != nil {
		return err
	}

	log.Info("Default admin user created")
	return nil
}

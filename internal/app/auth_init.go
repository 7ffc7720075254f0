// Package app provides authentication initialization.
package app

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/freteops/frete-service/internal/domain/model"
	"github.com/freteops/frete-service/internal/repository"
)

// initializeDefaultAdmin creates the bootstrap admin account when
// ADMIN_EMAIL and ADMIN_PASSWORD are set and no user with that email
// exists yet. Without it a fresh deployment has no way to reach the
// admin-gated catalog deletes.
func initializeDefaultAdmin(userRepo repository.UserRepositoryInterface) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &model.User{
		Email:          email,
		Password:       string(hashedPassword),
		Name:           "Administrator",
		Role:           model.RoleAdmin,
		EmailConfirmed: true,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("Created default admin user")
	return nil
}

package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/app/repositories"
	"github.com/lmrivero/chatsurvey/internal/config"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
	"github.com/lmrivero/chatsurvey/internal/pkg/auth"
	"github.com/lmrivero/chatsurvey/internal/pkg/logger"
)

// EnsureAdminUser creates the default admin account when it does not exist.
// Credentials come from configuration; nothing is done when they are unset.
func EnsureAdminUser(ctx context.Context, cfg *config.Config, userRepo repositories.IUserRepository) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Debug().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	if _, err := userRepo.GetByEmail(ctx, cfg.Admin.Email); err == nil {
		logger.Debug().Str("email", cfg.Admin.Email).Msg("Admin user already exists")
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}

	admin := &models.User{
		Username: username,
		Email:    cfg.Admin.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateIdentity) {
			// Another instance seeded it first
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info().Str("email", admin.Email).Msg("Default admin user created")
	return nil
}

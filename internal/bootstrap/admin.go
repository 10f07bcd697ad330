// Package bootstrap handles one-time initialization tasks for the application.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dukerupert/orderflow/internal/domain"
)

// AdminConfig contains configuration for the initial admin user.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// Validate checks that the admin configuration is valid.
func (c *AdminConfig) Validate() error {
	if c.Email == "" {
		return errors.New("admin email is required")
	}
	if c.Password == "" {
		return errors.New("admin password is required")
	}
	if len(c.Password) < 12 {
		return errors.New("admin password must be at least 12 characters")
	}
	return nil
}

// EnsureAdmin creates the initial admin user if it doesn't exist.
// This function is idempotent - safe to call on every startup.
//
// If AdminConfig is nil or has empty Email/Password, it logs a warning
// and skips, which allows running without an admin in dev.
func EnsureAdmin(ctx context.Context, users domain.UserService, cfg *AdminConfig, logger *slog.Logger) error {
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		logger.Warn("bootstrap: skipping admin creation - ADMIN_EMAIL or ADMIN_PASSWORD not set",
			"hint", "Set these environment variables to create an admin user on first startup",
		)
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid admin configuration: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = "Admin"
	}

	user, err := users.Register(ctx, name, cfg.Email, cfg.Password)
	if err != nil {
		if domain.IsCode(err, domain.ECONFLICT) {
			logger.Info("bootstrap: admin user already exists", "email", cfg.Email)
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("bootstrap: admin user created successfully",
		"email", cfg.Email,
		"user_id", user.ID,
	)

	return nil
}

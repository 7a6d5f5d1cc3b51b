package seed

import (
	"context"
	"fmt"

	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/edupoint/schooladmin/internal/pkg/auth"
	"github.com/edupoint/schooladmin/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultAdminEmail is the bootstrap admin account created on first run.
const DefaultAdminEmail = "admin@school.test"

// Run inserts the baseline roles and a default admin account. Every insert is
// idempotent so repeated startups are safe.
func Run(ctx context.Context, pool *pgxpool.Pool, adminPassword string) error {
	if err := seedRoles(ctx, pool); err != nil {
		return err
	}
	return seedAdmin(ctx, pool, adminPassword)
}

func seedRoles(ctx context.Context, pool *pgxpool.Pool) error {
	roles := []models.RoleType{models.RoleAdmin, models.RoleTeacher, models.RoleStudent}
	for _, role := range roles {
		if _, err := pool.Exec(ctx, `
			INSERT INTO roles (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING`, string(role)); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role, err)
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool, password string) error {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, DefaultAdminEmail).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	if password == "" {
		generated, err := auth.GenerateTemporaryPassword()
		if err != nil {
			return err
		}
		password = generated
		logger.Warn().
			Str("email", DefaultAdminEmail).
			Str("password", password).
			Msg("Generated admin password; change it after first login")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (role_id, name, email, password, is_active)
		SELECT r.id, 'Administrator', $1, $2, true
		FROM roles r WHERE r.name = $3`,
		DefaultAdminEmail, hashed, string(models.RoleAdmin))
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	logger.Info().Str("email", DefaultAdminEmail).Msg("Admin account created")
	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/edupoint/schooladmin/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUserNotFound is returned when a user id or email does not resolve.
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles user identity lookups.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID retrieves a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, role_id, name, email, is_active, reporter_id,
		       status_last_reviewed_at, last_login_at, created_at, updated_at
		FROM users
		WHERE id = $1`, id).Scan(
		&user.ID, &user.RoleID, &user.Name, &user.Email, &user.IsActive,
		&user.ReporterID, &user.StatusLastReviewedAt, &user.LastLoginAt,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// FindByEmail retrieves a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, role_id, name, email, is_active, reporter_id,
		       status_last_reviewed_at, last_login_at, created_at, updated_at
		FROM users
		WHERE email = $1`, email).Scan(
		&user.ID, &user.RoleID, &user.Name, &user.Email, &user.IsActive,
		&user.ReporterID, &user.StatusLastReviewedAt, &user.LastLoginAt,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return &user, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrRoleNotFound is returned when a role name does not resolve.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository resolves role names to ids through a read-through cache.
// Role rows are seeded at startup and never mutated at runtime, so a cached
// id stays valid for the life of the process.
type RoleRepository struct {
	db *pgxpool.Pool

	mu    sync.RWMutex
	cache map[models.RoleType]int64
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db:    db,
		cache: make(map[models.RoleType]int64),
	}
}

// GetRoleID returns the id for a role name, hitting the database only on the
// first lookup per role.
func (r *RoleRepository) GetRoleID(ctx context.Context, role models.RoleType) (int64, error) {
	r.mu.RLock()
	id, ok := r.cache[role]
	r.mu.RUnlock()
	if ok {
		return id, nil
	}

	err := r.db.QueryRow(ctx, `SELECT id FROM roles WHERE name ILIKE $1`, string(role)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrRoleNotFound
		}
		return 0, fmt.Errorf("error resolving role %q: %w", role, err)
	}

	r.mu.Lock()
	r.cache[role] = id
	r.mu.Unlock()
	return id, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrClassNotFound is returned when a class id does not resolve.
var ErrClassNotFound = errors.New("class not found")

// ClassRepository handles class database operations.
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

// GetAll retrieves all classes ordered by name.
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, sections FROM classes ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	defer rows.Close()

	classes := make([]*models.Class, 0)
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Sections); err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}

	return classes, nil
}

// GetByID retrieves a class by id.
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	var c models.Class
	err := r.db.QueryRow(ctx, `SELECT id, name, sections FROM classes WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Sections)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}
	return &c, nil
}

// Create inserts a new class and returns the affected row count.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (int64, error) {
	tag, err := r.db.Exec(ctx, `INSERT INTO classes (name, sections) VALUES ($1, $2)`,
		class.Name, class.Sections)
	if err != nil {
		return 0, fmt.Errorf("error creating class: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Update modifies an existing class and returns the affected row count.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE classes SET name = $1, sections = $2 WHERE id = $3`,
		class.Name, class.Sections, class.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating class: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a class and returns the affected row count.
func (r *ClassRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting class: %w", err)
	}
	return tag.RowsAffected(), nil
}

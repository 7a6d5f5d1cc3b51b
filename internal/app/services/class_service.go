package services

import (
	"context"
	"errors"

	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/edupoint/schooladmin/internal/app/repositories"
	"github.com/edupoint/schooladmin/internal/pkg/apperrors"
	"github.com/edupoint/schooladmin/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// ClassStore abstracts class persistence.
type ClassStore interface {
	GetAll(ctx context.Context) ([]*models.Class, error)
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) (int64, error)
	Update(ctx context.Context, class *models.Class) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ClassService defines the interface for class management operations.
type ClassService interface {
	GetAllClasses(ctx context.Context) ([]*models.Class, error)
	GetClassDetail(ctx context.Context, id int64) (*models.Class, error)
	AddNewClass(ctx context.Context, class *models.Class) (string, error)
	UpdateClass(ctx context.Context, class *models.Class) (string, error)
	RemoveClass(ctx context.Context, id int64) (string, error)
}

type classServiceImpl struct {
	classes ClassStore
	logger  zerolog.Logger
}

// NewClassService creates a new ClassService.
func NewClassService(classes ClassStore, logger zerolog.Logger) ClassService {
	return &classServiceImpl{classes: classes, logger: logger}
}

func ensureValidClassID(id int64) error {
	if !validation.IsValidID(id) {
		return apperrors.NewInvalidArgumentError("Invalid class id")
	}
	return nil
}

// GetAllClasses lists every class. Zero classes yield an empty slice.
func (s *classServiceImpl) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classes.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list classes")
		return nil, apperrors.WrapInternal(err, "Failed to fetch classes")
	}
	if classes == nil {
		classes = make([]*models.Class, 0)
	}
	return classes, nil
}

// GetClassDetail fetches a single class.
func (s *classServiceImpl) GetClassDetail(ctx context.Context, id int64) (*models.Class, error) {
	if err := ensureValidClassID(id); err != nil {
		return nil, err
	}

	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClassNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, apperrors.WrapInternal(err, "Unable to fetch class detail")
	}
	return class, nil
}

// AddNewClass creates a class. A create that affects no rows is a failure,
// not a no-op.
func (s *classServiceImpl) AddNewClass(ctx context.Context, class *models.Class) (string, error) {
	if !validation.IsNonEmpty(class.Name) {
		return "", apperrors.NewInvalidArgumentError("Class name is required")
	}

	affected, err := s.classes.Create(ctx, class)
	if err != nil {
		s.logger.Error().Err(err).Str("name", class.Name).Msg("Failed to add class")
		return "", apperrors.WrapInternal(err, "Unable to add class")
	}
	if affected <= 0 {
		return "", apperrors.NewInternalError("Unable to add class")
	}

	return "Class added successfully", nil
}

// UpdateClass modifies an existing class. Zero affected rows means the id did
// not resolve.
func (s *classServiceImpl) UpdateClass(ctx context.Context, class *models.Class) (string, error) {
	if err := ensureValidClassID(class.ID); err != nil {
		return "", err
	}
	if !validation.IsNonEmpty(class.Name) {
		return "", apperrors.NewInvalidArgumentError("Class name is required")
	}

	affected, err := s.classes.Update(ctx, class)
	if err != nil {
		s.logger.Error().Err(err).Int64("classID", class.ID).Msg("Failed to update class")
		return "", apperrors.WrapInternal(err, "Unable to update class")
	}
	if affected <= 0 {
		return "", apperrors.ErrClassNotFound
	}

	return "Class updated successfully", nil
}

// RemoveClass deletes a class. Zero affected rows means the id did not
// resolve.
func (s *classServiceImpl) RemoveClass(ctx context.Context, id int64) (string, error) {
	if err := ensureValidClassID(id); err != nil {
		return "", err
	}

	affected, err := s.classes.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("classID", id).Msg("Failed to delete class")
		return "", apperrors.WrapInternal(err, "Unable to delete class")
	}
	if affected <= 0 {
		return "", apperrors.ErrClassNotFound
	}

	return "Class deleted successfully", nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/edupoint/schooladmin/internal/app/repositories"
	"github.com/edupoint/schooladmin/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClassService(store *MockClassStore) ClassService {
	return NewClassService(store, zerolog.Nop())
}

func TestGetAllClasses_EmptyResultIsNotAnError(t *testing.T) {
	store := &MockClassStore{
		GetAllFunc: func(ctx context.Context) ([]*models.Class, error) {
			return make([]*models.Class, 0), nil
		},
	}
	svc := newClassService(store)

	classes, err := svc.GetAllClasses(context.Background())

	require.NoError(t, err)
	require.NotNil(t, classes)
	assert.Len(t, classes, 0)
}

func TestGetClassDetail_InvalidID(t *testing.T) {
	svc := newClassService(&MockClassStore{})

	_, err := svc.GetClassDetail(context.Background(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestGetClassDetail_UnknownClass(t *testing.T) {
	store := &MockClassStore{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.Class, error) {
			return nil, repositories.ErrClassNotFound
		},
	}
	svc := newClassService(store)

	_, err := svc.GetClassDetail(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddNewClass_RequiresName(t *testing.T) {
	store := &MockClassStore{}
	svc := newClassService(store)

	_, err := svc.AddNewClass(context.Background(), &models.Class{Name: "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	assert.Equal(t, 0, store.CreateCalls)
}

func TestAddNewClass_Success(t *testing.T) {
	store := &MockClassStore{
		CreateFunc: func(ctx context.Context, class *models.Class) (int64, error) {
			return 1, nil
		},
	}
	svc := newClassService(store)

	msg, err := svc.AddNewClass(context.Background(), &models.Class{Name: "Grade 5", Sections: strPtr("A,B,C")})

	require.NoError(t, err)
	assert.Equal(t, "Class added successfully", msg)
}

func TestAddNewClass_ZeroRowsIsFailure(t *testing.T) {
	store := &MockClassStore{
		CreateFunc: func(ctx context.Context, class *models.Class) (int64, error) {
			return 0, nil
		},
	}
	svc := newClassService(store)

	_, err := svc.AddNewClass(context.Background(), &models.Class{Name: "Grade 5"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestUpdateClass_UnknownClassIsNotFound(t *testing.T) {
	store := &MockClassStore{
		UpdateFunc: func(ctx context.Context, class *models.Class) (int64, error) {
			return 0, nil
		},
	}
	svc := newClassService(store)

	_, err := svc.UpdateClass(context.Background(), &models.Class{ID: 99, Name: "Grade 5"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRemoveClass_Success(t *testing.T) {
	store := &MockClassStore{
		DeleteFunc: func(ctx context.Context, id int64) (int64, error) {
			return 1, nil
		},
	}
	svc := newClassService(store)

	msg, err := svc.RemoveClass(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Class deleted successfully", msg)
}

func TestRemoveClass_StoreError(t *testing.T) {
	store := &MockClassStore{
		DeleteFunc: func(ctx context.Context, id int64) (int64, error) {
			return 0, errors.New("connection refused")
		},
	}
	svc := newClassService(store)

	_, err := svc.RemoveClass(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/edupoint/schooladmin/internal/app/models/dto"
	"github.com/edupoint/schooladmin/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStudentService stubs the service layer for handler tests.
type mockStudentService struct {
	SetStudentStatusFunc func(ctx context.Context, userID, reviewerID int64, status *bool) (string, error)
}

func (m *mockStudentService) GetAllStudents(ctx context.Context, filter *models.StudentFilter) ([]*models.StudentListItem, error) {
	return nil, nil
}

func (m *mockStudentService) GetStudentDetail(ctx context.Context, id int64) (*models.StudentDetail, error) {
	return nil, nil
}

func (m *mockStudentService) AddNewStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.CreateStudentResult, error) {
	return nil, nil
}

func (m *mockStudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (string, error) {
	return "", nil
}

func (m *mockStudentService) SetStudentStatus(ctx context.Context, userID, reviewerID int64, status *bool) (string, error) {
	return m.SetStudentStatusFunc(ctx, userID, reviewerID, status)
}

func (m *mockStudentService) RemoveStudent(ctx context.Context, id int64) (string, error) {
	return "", nil
}

func TestSetStudentStatus_ReviewerComesFromAuthContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotUserID, gotReviewerID int64
	svc := &mockStudentService{
		SetStudentStatusFunc: func(ctx context.Context, userID, reviewerID int64, status *bool) (string, error) {
			gotUserID, gotReviewerID = userID, reviewerID
			return "Student status changed successfully", nil
		},
	}
	ctrl := NewStudentController(svc)

	router := gin.New()
	router.POST("/students/:id/status", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, int64(12))
		ctrl.SetStudentStatus(c)
	})

	// The reviewerId in the body must be ignored.
	body := strings.NewReader(`{"status": false, "reviewerId": 999}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students/7/status", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), gotUserID)
	assert.Equal(t, int64(12), gotReviewerID)
}

func TestSetStudentStatus_NonNumericIDIs400(t *testing.T) {
	gin.SetMode(gin.TestMode)

	called := false
	svc := &mockStudentService{
		SetStudentStatusFunc: func(ctx context.Context, userID, reviewerID int64, status *bool) (string, error) {
			called = true
			return "", nil
		},
	}
	ctrl := NewStudentController(svc)

	router := gin.New()
	router.POST("/students/:id/status", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, int64(12))
		ctrl.SetStudentStatus(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students/abc/status", strings.NewReader(`{"status": true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

package controllers

import (
	"net/http"

	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/edupoint/schooladmin/internal/app/models/dto"
	"github.com/edupoint/schooladmin/internal/app/services"
	"github.com/edupoint/schooladmin/internal/middleware"
	"github.com/edupoint/schooladmin/internal/pkg/apperrors"
	"github.com/edupoint/schooladmin/internal/pkg/validation"
	"github.com/gin-gonic/gin"
)

// StudentController handles student endpoints.
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// pathID parses the :id segment into a positive integer id.
func pathID(c *gin.Context, message string) (int64, error) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		return 0, apperrors.NewInvalidArgumentError(message)
	}
	return id, nil
}

// GetAllStudents handles GET /students.
func (ctrl *StudentController) GetAllStudents(c *gin.Context) {
	var query dto.ListStudentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidArgumentError("Invalid filter parameters"))
		return
	}

	filter := &models.StudentFilter{
		Name:      query.Name,
		ClassName: query.ClassName,
		Section:   query.Section,
		Roll:      query.Roll,
	}

	students, err := ctrl.studentService.GetAllStudents(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetStudentDetail handles GET /students/:id.
func (ctrl *StudentController) GetStudentDetail(c *gin.Context) {
	id, err := pathID(c, "Invalid student id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	detail, err := ctrl.studentService.GetStudentDetail(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(detail))
}

// AddNewStudent handles POST /students.
func (ctrl *StudentController) AddNewStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidArgumentError("Invalid request payload"))
		return
	}

	result, err := ctrl.studentService.AddNewStudent(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{Message: result.Message})
}

// UpdateStudent handles PUT /students/:id.
func (ctrl *StudentController) UpdateStudent(c *gin.Context) {
	id, err := pathID(c, "Invalid student id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidArgumentError("Invalid request payload"))
		return
	}

	message, err := ctrl.studentService.UpdateStudent(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: message})
}

// SetStudentStatus handles POST /students/:id/status. The reviewer identity
// comes from the authenticated caller, never from the payload.
func (ctrl *StudentController) SetStudentStatus(c *gin.Context) {
	id, err := pathID(c, "Invalid student id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	reviewerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewInternalError("Reviewer identity missing from request context"))
		return
	}

	var req dto.SetStudentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidArgumentError("Status must be a boolean"))
		return
	}

	message, err := ctrl.studentService.SetStudentStatus(c.Request.Context(), id, reviewerID, req.Status)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: message})
}

// RemoveStudent handles DELETE /students/:id.
func (ctrl *StudentController) RemoveStudent(c *gin.Context) {
	id, err := pathID(c, "Invalid student id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	message, err := ctrl.studentService.RemoveStudent(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: message})
}

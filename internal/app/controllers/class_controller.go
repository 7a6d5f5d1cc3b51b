package controllers

import (
	"net/http"

	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/edupoint/schooladmin/internal/app/models/dto"
	"github.com/edupoint/schooladmin/internal/app/services"
	"github.com/edupoint/schooladmin/internal/middleware"
	"github.com/edupoint/schooladmin/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// ClassController handles class endpoints.
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController.
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// GetAllClasses handles GET /classes.
func (ctrl *ClassController) GetAllClasses(c *gin.Context) {
	classes, err := ctrl.classService.GetAllClasses(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(classes))
}

// GetClassDetail handles GET /classes/:id.
func (ctrl *ClassController) GetClassDetail(c *gin.Context) {
	id, err := pathID(c, "Invalid class id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	class, err := ctrl.classService.GetClassDetail(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(class))
}

// AddNewClass handles POST /classes.
func (ctrl *ClassController) AddNewClass(c *gin.Context) {
	var req dto.ClassPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidArgumentError("Invalid request payload"))
		return
	}

	message, err := ctrl.classService.AddNewClass(c.Request.Context(), &models.Class{
		Name:     req.Name,
		Sections: req.Sections,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{Message: message})
}

// UpdateClass handles PUT /classes/:id.
func (ctrl *ClassController) UpdateClass(c *gin.Context) {
	id, err := pathID(c, "Invalid class id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.ClassPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewInvalidArgumentError("Invalid request payload"))
		return
	}

	message, err := ctrl.classService.UpdateClass(c.Request.Context(), &models.Class{
		ID:       id,
		Name:     req.Name,
		Sections: req.Sections,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: message})
}

// RemoveClass handles DELETE /classes/:id.
func (ctrl *ClassController) RemoveClass(c *gin.Context) {
	id, err := pathID(c, "Invalid class id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	message, err := ctrl.classService.RemoveClass(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: message})
}

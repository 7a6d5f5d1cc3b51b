package controllers

import (
	"github.com/edupoint/schooladmin/internal/app/services"
)

// Controllers holds all the controller instances.
type Controllers struct {
	StudentController *StudentController
	ClassController   *ClassController
}

// NewControllers initializes all controllers.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		StudentController: NewStudentController(svcs.StudentService),
		ClassController:   NewClassController(svcs.ClassService),
	}
}

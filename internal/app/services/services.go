package services

import (
	"github.com/edupoint/schooladmin/internal/app/repositories"
	"github.com/edupoint/schooladmin/internal/pkg/email"
	"github.com/rs/zerolog"
)

// Services holds all the service instances.
type Services struct {
	StudentService StudentService
	ClassService   ClassService
}

// NewServices initializes all services over the repository layer.
func NewServices(repos *repositories.Repositories, mailer email.Service, logger zerolog.Logger) *Services {
	return &Services{
		StudentService: NewStudentService(repos.StudentRepository, repos.UserRepository, mailer, logger),
		ClassService:   NewClassService(repos.ClassRepository, logger),
	}
}

package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances.
type Repositories struct {
	RoleRepository    *RoleRepository
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
	ClassRepository   *ClassRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	roles := NewRoleRepository(db)
	return &Repositories{
		RoleRepository:    roles,
		UserRepository:    NewUserRepository(db),
		StudentRepository: NewStudentRepository(db, roles),
		ClassRepository:   NewClassRepository(db),
	}
}

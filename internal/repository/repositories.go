package repository

import (
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/uptrace/bun"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Department   *DepartmentRepository
	Manager      *ManagerRepository
	Employee     *EmployeeRepository
	EmployeeTask *EmployeeTaskRepository
}

// New builds the repositories on db.
func New(db *bun.DB) *Repositories {
	return &Repositories{
		Department:   NewDepartmentRepository(db),
		Manager:      NewManagerRepository(db),
		Employee:     NewEmployeeRepository(db),
		EmployeeTask: NewEmployeeTaskRepository(db),
	}
}

// NewRepositories builds the repositories on the server's database.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Bun)
}

package service

import (
	"github.com/Nikil-Srinivasan/Stint360-API/internal/lib/job"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/repository"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
)

type Services struct {
	Auth         *AuthService
	Job          *job.JobService
	Department   *DepartmentService
	Manager      *ManagerService
	Employee     *EmployeeService
	EmployeeTask *EmployeeTaskService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	services := New(repos, notifierFor(s.Job))
	services.Job = s.Job

	if s.Config.Auth.Enabled() {
		services.Auth = NewAuthService(s)
	}

	return services, nil
}

// New builds the domain services on repos.
func New(repos *repository.Repositories, notifier TaskNotifier) *Services {
	return &Services{
		Department:   NewDepartmentService(repos.Department),
		Manager:      NewManagerService(repos.Manager),
		Employee:     NewEmployeeService(repos.Employee),
		EmployeeTask: NewEmployeeTaskService(repos.EmployeeTask, notifier),
	}
}

// notifierFor keeps a nil *job.JobService from becoming a non-nil interface.
func notifierFor(j *job.JobService) TaskNotifier {
	if j == nil {
		return nil
	}
	return j
}

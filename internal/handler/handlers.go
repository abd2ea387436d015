package handler

import (
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/service"
)

type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Department   *DepartmentHandler
	Manager      *ManagerHandler
	Employee     *EmployeeHandler
	EmployeeTask *EmployeeTaskHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Department:   NewDepartmentHandler(s, services.Department),
		Manager:      NewManagerHandler(s, services.Manager),
		Employee:     NewEmployeeHandler(s, services.Employee),
		EmployeeTask: NewEmployeeTaskHandler(s, services.EmployeeTask),
	}
}

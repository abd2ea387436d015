package handler

import (
	"github.com/Nikil-Srinivasan/Stint360-API/internal/dto"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/envelope"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/service"
	"github.com/labstack/echo/v4"
)

type EmployeeHandler struct {
	Handler
	service *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *EmployeeHandler) GetAllEmployees(c echo.Context, _ *dto.NoParams) (envelope.Envelope[[]dto.GetEmployeeDto], error) {
	return envelope.From(h.service.GetAll(c.Request().Context())), nil
}

func (h *EmployeeHandler) GetEmployeesByManagerID(c echo.Context, req *dto.ManagerIDQuery) (envelope.Envelope[[]dto.GetEmployeeDto], error) {
	return envelope.From(h.service.GetByManager(c.Request().Context(), req.ManagerID)), nil
}

func (h *EmployeeHandler) GetEmployeesByDepartmentID(c echo.Context, req *dto.DepartmentIDQuery) (envelope.Envelope[[]dto.GetEmployeeDto], error) {
	return envelope.From(h.service.GetByDepartment(c.Request().Context(), req.DepartmentID)), nil
}

func (h *EmployeeHandler) GetEmployeeByID(c echo.Context, req *dto.IDQuery) (envelope.Envelope[dto.GetEmployeeDto], error) {
	return envelope.From(h.service.GetByID(c.Request().Context(), req.ID)), nil
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context, req *dto.AddEmployeeDto) (envelope.Envelope[dto.GetEmployeeDto], error) {
	return envelope.From(h.service.Add(c.Request().Context(), req)), nil
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context, req *dto.UpdateEmployeeDto) (envelope.Envelope[dto.GetEmployeeDto], error) {
	return envelope.From(h.service.Update(c.Request().Context(), req.ID, req)), nil
}

// DeleteEmployee also removes the employee's tasks.
func (h *EmployeeHandler) DeleteEmployee(c echo.Context, req *dto.IDQuery) (envelope.Envelope[dto.GetEmployeeDto], error) {
	return envelope.From(h.service.Delete(c.Request().Context(), req.ID)), nil
}

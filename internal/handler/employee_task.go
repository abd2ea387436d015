package handler

import (
	"github.com/Nikil-Srinivasan/Stint360-API/internal/dto"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/envelope"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/service"
	"github.com/labstack/echo/v4"
)

type EmployeeTaskHandler struct {
	Handler
	service *service.EmployeeTaskService
}

func NewEmployeeTaskHandler(s *server.Server, svc *service.EmployeeTaskService) *EmployeeTaskHandler {
	return &EmployeeTaskHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *EmployeeTaskHandler) GetAllEmployeeTasks(c echo.Context, _ *dto.NoParams) (envelope.Envelope[[]dto.GetEmployeeTaskDto], error) {
	return envelope.From(h.service.GetAll(c.Request().Context())), nil
}

func (h *EmployeeTaskHandler) GetEmployeeTasksByEmployeeID(c echo.Context, req *dto.EmployeeIDQuery) (envelope.Envelope[[]dto.GetEmployeeTaskDto], error) {
	return envelope.From(h.service.GetByEmployee(c.Request().Context(), req.EmployeeID)), nil
}

func (h *EmployeeTaskHandler) GetEmployeeTaskByID(c echo.Context, req *dto.IDQuery) (envelope.Envelope[dto.GetEmployeeTaskDto], error) {
	return envelope.From(h.service.GetByID(c.Request().Context(), req.ID)), nil
}

// CreateEmployeeTask creates a pending task and notifies the assignee.
func (h *EmployeeTaskHandler) CreateEmployeeTask(c echo.Context, req *dto.AddEmployeeTaskDto) (envelope.Envelope[dto.GetEmployeeTaskDto], error) {
	return envelope.From(h.service.Add(c.Request().Context(), req)), nil
}

func (h *EmployeeTaskHandler) UpdateEmployeeTask(c echo.Context, req *dto.UpdateEmployeeTaskDto) (envelope.Envelope[dto.GetEmployeeTaskDto], error) {
	return envelope.From(h.service.Update(c.Request().Context(), req.ID, req)), nil
}

func (h *EmployeeTaskHandler) UpdateEmployeeTaskStatus(c echo.Context, req *dto.UpdateEmployeeTaskStatusDto) (envelope.Envelope[dto.GetEmployeeTaskDto], error) {
	return envelope.From(h.service.UpdateStatus(c.Request().Context(), req.ID, req)), nil
}

func (h *EmployeeTaskHandler) DeleteEmployeeTask(c echo.Context, req *dto.IDQuery) (envelope.Envelope[dto.GetEmployeeTaskDto], error) {
	return envelope.From(h.service.Delete(c.Request().Context(), req.ID)), nil
}

package handler

import (
	"github.com/Nikil-Srinivasan/Stint360-API/internal/dto"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/envelope"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/service"
	"github.com/labstack/echo/v4"
)

type DepartmentHandler struct {
	Handler
	service *service.DepartmentService
}

func NewDepartmentHandler(s *server.Server, svc *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *DepartmentHandler) GetAllDepartments(c echo.Context, _ *dto.NoParams) (envelope.Envelope[[]dto.GetDepartmentDto], error) {
	return envelope.From(h.service.GetAll(c.Request().Context())), nil
}

// GetAvailableDepartments lists departments no manager is assigned to.
func (h *DepartmentHandler) GetAvailableDepartments(c echo.Context, _ *dto.NoParams) (envelope.Envelope[[]dto.GetDepartmentDto], error) {
	return envelope.From(h.service.GetAvailable(c.Request().Context())), nil
}

func (h *DepartmentHandler) GetDepartmentByID(c echo.Context, req *dto.IDQuery) (envelope.Envelope[dto.GetDepartmentDto], error) {
	return envelope.From(h.service.GetByID(c.Request().Context(), req.ID)), nil
}

func (h *DepartmentHandler) CreateDepartment(c echo.Context, req *dto.AddDepartmentDto) (envelope.Envelope[dto.GetDepartmentDto], error) {
	return envelope.From(h.service.Add(c.Request().Context(), req)), nil
}

func (h *DepartmentHandler) UpdateDepartment(c echo.Context, req *dto.UpdateDepartmentDto) (envelope.Envelope[dto.GetDepartmentDto], error) {
	return envelope.From(h.service.Update(c.Request().Context(), req.ID, req)), nil
}

func (h *DepartmentHandler) DeleteDepartment(c echo.Context, req *dto.IDQuery) (envelope.Envelope[dto.GetDepartmentDto], error) {
	return envelope.From(h.service.Delete(c.Request().Context(), req.ID)), nil
}

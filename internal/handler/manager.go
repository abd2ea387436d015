package handler

import (
	"github.com/Nikil-Srinivasan/Stint360-API/internal/dto"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/envelope"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/service"
	"github.com/labstack/echo/v4"
)

type ManagerHandler struct {
	Handler
	service *service.ManagerService
}

func NewManagerHandler(s *server.Server, svc *service.ManagerService) *ManagerHandler {
	return &ManagerHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *ManagerHandler) GetAllManagers(c echo.Context, _ *dto.NoParams) (envelope.Envelope[[]dto.GetManagerDto], error) {
	return envelope.From(h.service.GetAll(c.Request().Context())), nil
}

func (h *ManagerHandler) GetManagerByID(c echo.Context, req *dto.IDQuery) (envelope.Envelope[dto.GetManagerDto], error) {
	return envelope.From(h.service.GetByID(c.Request().Context(), req.ID)), nil
}

func (h *ManagerHandler) CreateManager(c echo.Context, req *dto.AddManagerDto) (envelope.Envelope[dto.GetManagerDto], error) {
	return envelope.From(h.service.Add(c.Request().Context(), req)), nil
}

func (h *ManagerHandler) UpdateManager(c echo.Context, req *dto.UpdateManagerDto) (envelope.Envelope[dto.GetManagerDto], error) {
	return envelope.From(h.service.Update(c.Request().Context(), req.ID, req)), nil
}

func (h *ManagerHandler) DeleteManager(c echo.Context, req *dto.IDQuery) (envelope.Envelope[dto.GetManagerDto], error) {
	return envelope.From(h.service.Delete(c.Request().Context(), req.ID)), nil
}

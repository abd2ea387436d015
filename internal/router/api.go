package router

import (
	"net/http"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/handler"
	"github.com/labstack/echo/v4"
)

// Every /api route answers 200; the envelope carries the outcome.

func registerDepartmentRoutes(api *echo.Group, h *handler.DepartmentHandler) {
	g := api.Group("/Department")

	g.GET("/GetAllDepartments", handler.Handle(h.Handler, h.GetAllDepartments, http.StatusOK))
	g.GET("/GetAvailableDepartments", handler.Handle(h.Handler, h.GetAvailableDepartments, http.StatusOK))
	g.GET("/GetDepartmentById", handler.Handle(h.Handler, h.GetDepartmentByID, http.StatusOK))
	g.POST("/CreateDepartment", handler.Handle(h.Handler, h.CreateDepartment, http.StatusOK))
	g.PUT("/UpdateDepartment", handler.Handle(h.Handler, h.UpdateDepartment, http.StatusOK))
	g.DELETE("/DeleteDepartment", handler.Handle(h.Handler, h.DeleteDepartment, http.StatusOK))
}

func registerManagerRoutes(api *echo.Group, h *handler.ManagerHandler) {
	g := api.Group("/Manager")

	g.GET("/GetAllManagers", handler.Handle(h.Handler, h.GetAllManagers, http.StatusOK))
	g.GET("/GetManagerById", handler.Handle(h.Handler, h.GetManagerByID, http.StatusOK))
	g.POST("/CreateManager", handler.Handle(h.Handler, h.CreateManager, http.StatusOK))
	g.PUT("/UpdateManager", handler.Handle(h.Handler, h.UpdateManager, http.StatusOK))
	g.DELETE("/DeleteManager", handler.Handle(h.Handler, h.DeleteManager, http.StatusOK))
}

func registerEmployeeRoutes(api *echo.Group, h *handler.EmployeeHandler) {
	g := api.Group("/Employee")

	g.GET("/GetAllEmployees", handler.Handle(h.Handler, h.GetAllEmployees, http.StatusOK))
	g.GET("/GetEmployeeById", handler.Handle(h.Handler, h.GetEmployeeByID, http.StatusOK))
	g.GET("/GetEmployeesByManagerId", handler.Handle(h.Handler, h.GetEmployeesByManagerID, http.StatusOK))
	g.GET("/GetEmployeesByDepartmentId", handler.Handle(h.Handler, h.GetEmployeesByDepartmentID, http.StatusOK))
	g.POST("/CreateEmployee", handler.Handle(h.Handler, h.CreateEmployee, http.StatusOK))
	g.PUT("/UpdateEmployee", handler.Handle(h.Handler, h.UpdateEmployee, http.StatusOK))
	g.DELETE("/DeleteEmployee", handler.Handle(h.Handler, h.DeleteEmployee, http.StatusOK))
}

func registerEmployeeTaskRoutes(api *echo.Group, h *handler.EmployeeTaskHandler) {
	g := api.Group("/EmployeeTask")

	g.GET("/GetAllEmployeeTasks", handler.Handle(h.Handler, h.GetAllEmployeeTasks, http.StatusOK))
	g.GET("/GetEmployeeTaskById", handler.Handle(h.Handler, h.GetEmployeeTaskByID, http.StatusOK))
	g.GET("/GetEmployeeTasksByEmployeeId", handler.Handle(h.Handler, h.GetEmployeeTasksByEmployeeID, http.StatusOK))
	g.POST("/CreateEmployeeTasks", handler.Handle(h.Handler, h.CreateEmployeeTask, http.StatusOK))
	g.PUT("/UpdateEmployeeTask", handler.Handle(h.Handler, h.UpdateEmployeeTask, http.StatusOK))
	g.PUT("/UpdateEmployeeTaskStatus", handler.Handle(h.Handler, h.UpdateEmployeeTaskStatus, http.StatusOK))
	g.DELETE("/DeleteEmployeeTask", handler.Handle(h.Handler, h.DeleteEmployeeTask, http.StatusOK))
}

package service

import (
	"context"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/dto"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
)

type EmployeeStore interface {
	GetAll(ctx context.Context) ([]model.Employee, error)
	GetByManager(ctx context.Context, managerID int) ([]model.Employee, error)
	GetByDepartment(ctx context.Context, departmentID int) ([]model.Employee, error)
	GetByID(ctx context.Context, id int) (*model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	Update(ctx context.Context, id int, apply func(*model.Employee)) (*model.Employee, error)
	Delete(ctx context.Context, id int) (*model.Employee, error)
}

type EmployeeService struct {
	store EmployeeStore
}

func NewEmployeeService(store EmployeeStore) *EmployeeService {
	return &EmployeeService{store: store}
}

func (s *EmployeeService) GetAll(ctx context.Context) ([]dto.GetEmployeeDto, error) {
	employees, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, listError(err)
	}
	return dto.EmployeesFromModels(employees), nil
}

// GetByManager lists the employees reporting to managerID; an unknown
// manager yields an empty list.
func (s *EmployeeService) GetByManager(ctx context.Context, managerID int) ([]dto.GetEmployeeDto, error) {
	employees, err := s.store.GetByManager(ctx, managerID)
	if err != nil {
		return nil, listError(err)
	}
	return dto.EmployeesFromModels(employees), nil
}

func (s *EmployeeService) GetByDepartment(ctx context.Context, departmentID int) ([]dto.GetEmployeeDto, error) {
	employees, err := s.store.GetByDepartment(ctx, departmentID)
	if err != nil {
		return nil, listError(err)
	}
	return dto.EmployeesFromModels(employees), nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id int) (dto.GetEmployeeDto, error) {
	employee, err := s.store.GetByID(ctx, id)
	if err != nil {
		return dto.GetEmployeeDto{}, storeError("Employee", id, err)
	}
	return dto.EmployeeFromModel(employee), nil
}

func (s *EmployeeService) Add(ctx context.Context, in *dto.AddEmployeeDto) (dto.GetEmployeeDto, error) {
	employee, err := s.store.Create(ctx, in.ToModel())
	if err != nil {
		return dto.GetEmployeeDto{}, listError(err)
	}
	return dto.EmployeeFromModel(employee), nil
}

func (s *EmployeeService) Update(ctx context.Context, id int, in *dto.UpdateEmployeeDto) (dto.GetEmployeeDto, error) {
	employee, err := s.store.Update(ctx, id, in.Apply)
	if err != nil {
		return dto.GetEmployeeDto{}, storeError("Employee", id, err)
	}
	return dto.EmployeeFromModel(employee), nil
}

// Delete removes the employee; their tasks go with them.
func (s *EmployeeService) Delete(ctx context.Context, id int) (dto.GetEmployeeDto, error) {
	employee, err := s.store.Delete(ctx, id)
	if err != nil {
		return dto.GetEmployeeDto{}, storeError("Employee", id, err)
	}
	return dto.EmployeeFromModel(employee), nil
}

package service

import (
	"context"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/dto"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
)

type DepartmentStore interface {
	GetAll(ctx context.Context) ([]model.Department, error)
	GetAvailable(ctx context.Context) ([]model.Department, error)
	GetByID(ctx context.Context, id int) (*model.Department, error)
	Create(ctx context.Context, department *model.Department) (*model.Department, error)
	Update(ctx context.Context, id int, apply func(*model.Department)) (*model.Department, error)
	Delete(ctx context.Context, id int) (*model.Department, error)
}

type DepartmentService struct {
	store DepartmentStore
}

func NewDepartmentService(store DepartmentStore) *DepartmentService {
	return &DepartmentService{store: store}
}

func (s *DepartmentService) GetAll(ctx context.Context) ([]dto.GetDepartmentDto, error) {
	departments, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, listError(err)
	}
	return dto.DepartmentsFromModels(departments), nil
}

// GetAvailable lists the departments that have no manager yet.
func (s *DepartmentService) GetAvailable(ctx context.Context) ([]dto.GetDepartmentDto, error) {
	departments, err := s.store.GetAvailable(ctx)
	if err != nil {
		return nil, listError(err)
	}
	return dto.DepartmentsFromModels(departments), nil
}

func (s *DepartmentService) GetByID(ctx context.Context, id int) (dto.GetDepartmentDto, error) {
	department, err := s.store.GetByID(ctx, id)
	if err != nil {
		return dto.GetDepartmentDto{}, storeError("Department", id, err)
	}
	return dto.DepartmentFromModel(department), nil
}

func (s *DepartmentService) Add(ctx context.Context, in *dto.AddDepartmentDto) (dto.GetDepartmentDto, error) {
	department, err := s.store.Create(ctx, in.ToModel())
	if err != nil {
		return dto.GetDepartmentDto{}, listError(err)
	}
	return dto.DepartmentFromModel(department), nil
}

func (s *DepartmentService) Update(ctx context.Context, id int, in *dto.UpdateDepartmentDto) (dto.GetDepartmentDto, error) {
	department, err := s.store.Update(ctx, id, in.Apply)
	if err != nil {
		return dto.GetDepartmentDto{}, storeError("Department", id, err)
	}
	return dto.DepartmentFromModel(department), nil
}

func (s *DepartmentService) Delete(ctx context.Context, id int) (dto.GetDepartmentDto, error) {
	department, err := s.store.Delete(ctx, id)
	if err != nil {
		return dto.GetDepartmentDto{}, storeError("Department", id, err)
	}
	return dto.DepartmentFromModel(department), nil
}

package service

import (
	"context"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/dto"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
)

type ManagerStore interface {
	GetAll(ctx context.Context) ([]model.Manager, error)
	GetByID(ctx context.Context, id int) (*model.Manager, error)
	Create(ctx context.Context, manager *model.Manager) (*model.Manager, error)
	Update(ctx context.Context, id int, apply func(*model.Manager)) (*model.Manager, error)
	Delete(ctx context.Context, id int) (*model.Manager, error)
}

type ManagerService struct {
	store ManagerStore
}

func NewManagerService(store ManagerStore) *ManagerService {
	return &ManagerService{store: store}
}

func (s *ManagerService) GetAll(ctx context.Context) ([]dto.GetManagerDto, error) {
	managers, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, listError(err)
	}
	return dto.ManagersFromModels(managers), nil
}

func (s *ManagerService) GetByID(ctx context.Context, id int) (dto.GetManagerDto, error) {
	manager, err := s.store.GetByID(ctx, id)
	if err != nil {
		return dto.GetManagerDto{}, storeError("Manager", id, err)
	}
	return dto.ManagerFromModel(manager), nil
}

func (s *ManagerService) Add(ctx context.Context, in *dto.AddManagerDto) (dto.GetManagerDto, error) {
	manager, err := s.store.Create(ctx, in.ToModel())
	if err != nil {
		return dto.GetManagerDto{}, listError(err)
	}
	return dto.ManagerFromModel(manager), nil
}

func (s *ManagerService) Update(ctx context.Context, id int, in *dto.UpdateManagerDto) (dto.GetManagerDto, error) {
	manager, err := s.store.Update(ctx, id, in.Apply)
	if err != nil {
		return dto.GetManagerDto{}, storeError("Manager", id, err)
	}
	return dto.ManagerFromModel(manager), nil
}

func (s *ManagerService) Delete(ctx context.Context, id int) (dto.GetManagerDto, error) {
	manager, err := s.store.Delete(ctx, id)
	if err != nil {
		return dto.GetManagerDto{}, storeError("Manager", id, err)
	}
	return dto.ManagerFromModel(manager), nil
}

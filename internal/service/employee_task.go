package service

import (
	"context"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/dto"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/lib/job"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
	"github.com/rs/zerolog"
)

type EmployeeTaskStore interface {
	GetAll(ctx context.Context) ([]model.EmployeeTask, error)
	GetByEmployee(ctx context.Context, employeeID int) ([]model.EmployeeTask, error)
	GetByID(ctx context.Context, id int) (*model.EmployeeTask, error)
	Create(ctx context.Context, task *model.EmployeeTask) (*model.EmployeeTask, error)
	Update(ctx context.Context, id int, apply func(*model.EmployeeTask)) (before, after *model.EmployeeTask, err error)
	Delete(ctx context.Context, id int) (*model.EmployeeTask, error)
}

// TaskNotifier delivers the "task assigned" notification to an employee.
type TaskNotifier interface {
	NotifyTaskAssigned(ctx context.Context, p job.TaskAssignedPayload) error
}

type EmployeeTaskService struct {
	store    EmployeeTaskStore
	notifier TaskNotifier
}

// NewEmployeeTaskService builds the service. notifier may be nil, in which
// case assignments are not announced.
func NewEmployeeTaskService(store EmployeeTaskStore, notifier TaskNotifier) *EmployeeTaskService {
	return &EmployeeTaskService{store: store, notifier: notifier}
}

func (s *EmployeeTaskService) GetAll(ctx context.Context) ([]dto.GetEmployeeTaskDto, error) {
	tasks, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, listError(err)
	}
	return dto.EmployeeTasksFromModels(tasks), nil
}

func (s *EmployeeTaskService) GetByEmployee(ctx context.Context, employeeID int) ([]dto.GetEmployeeTaskDto, error) {
	tasks, err := s.store.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, listError(err)
	}
	return dto.EmployeeTasksFromModels(tasks), nil
}

func (s *EmployeeTaskService) GetByID(ctx context.Context, id int) (dto.GetEmployeeTaskDto, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		return dto.GetEmployeeTaskDto{}, storeError("EmployeeTask", id, err)
	}
	return dto.EmployeeTaskFromModel(task), nil
}

// Add creates a pending task and notifies the assignee.
func (s *EmployeeTaskService) Add(ctx context.Context, in *dto.AddEmployeeTaskDto) (dto.GetEmployeeTaskDto, error) {
	task, err := s.store.Create(ctx, in.ToModel())
	if err != nil {
		return dto.GetEmployeeTaskDto{}, listError(err)
	}

	s.notifyAssigned(ctx, task)

	return dto.EmployeeTaskFromModel(task), nil
}

// Update overwrites the fields present on in. Moving the task to another
// employee notifies the new assignee.
func (s *EmployeeTaskService) Update(ctx context.Context, id int, in *dto.UpdateEmployeeTaskDto) (dto.GetEmployeeTaskDto, error) {
	before, after, err := s.store.Update(ctx, id, in.Apply)
	if err != nil {
		return dto.GetEmployeeTaskDto{}, storeError("EmployeeTask", id, err)
	}

	if before.EmployeeID != after.EmployeeID {
		s.notifyAssigned(ctx, after)
	}

	return dto.EmployeeTaskFromModel(after), nil
}

// UpdateStatus changes only the task status.
func (s *EmployeeTaskService) UpdateStatus(ctx context.Context, id int, in *dto.UpdateEmployeeTaskStatusDto) (dto.GetEmployeeTaskDto, error) {
	_, after, err := s.store.Update(ctx, id, in.Apply)
	if err != nil {
		return dto.GetEmployeeTaskDto{}, storeError("EmployeeTask", id, err)
	}
	return dto.EmployeeTaskFromModel(after), nil
}

func (s *EmployeeTaskService) Delete(ctx context.Context, id int) (dto.GetEmployeeTaskDto, error) {
	task, err := s.store.Delete(ctx, id)
	if err != nil {
		return dto.GetEmployeeTaskDto{}, storeError("EmployeeTask", id, err)
	}
	return dto.EmployeeTaskFromModel(task), nil
}

// notifyAssigned enqueues the assignment email. Failures are logged and
// never fail the calling operation.
func (s *EmployeeTaskService) notifyAssigned(ctx context.Context, task *model.EmployeeTask) {
	if s.notifier == nil || task.Employee == nil || task.Employee.Email == "" {
		return
	}

	err := s.notifier.NotifyTaskAssigned(ctx, job.TaskAssignedPayload{
		TaskID:          task.TaskID,
		To:              task.Employee.Email,
		EmployeeName:    task.Employee.EmployeeName,
		TaskName:        task.TaskName,
		TaskDescription: task.TaskDescription,
		DueDate:         task.TaskDueDate,
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Int("task_id", task.TaskID).
			Msg("failed to enqueue task assigned notification")
	}
}

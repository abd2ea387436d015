package repository

import (
	"context"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
	"github.com/uptrace/bun"
)

type EmployeeTaskRepository struct {
	db *bun.DB
}

func NewEmployeeTaskRepository(db *bun.DB) *EmployeeTaskRepository {
	return &EmployeeTaskRepository{db: db}
}

func selectTasks(db bun.IDB, dest any) *bun.SelectQuery {
	return db.NewSelect().
		Model(dest).
		Relation("Employee")
}

func (r *EmployeeTaskRepository) GetAll(ctx context.Context) ([]model.EmployeeTask, error) {
	tasks := []model.EmployeeTask{}
	err := selectTasks(r.db, &tasks).
		OrderExpr("t.task_id ASC").
		Scan(ctx)
	return tasks, err
}

func (r *EmployeeTaskRepository) GetByEmployee(ctx context.Context, employeeID int) ([]model.EmployeeTask, error) {
	tasks := []model.EmployeeTask{}
	err := selectTasks(r.db, &tasks).
		Where("t.employee_id = ?", employeeID).
		OrderExpr("t.task_id ASC").
		Scan(ctx)
	return tasks, err
}

func (r *EmployeeTaskRepository) GetByID(ctx context.Context, id int) (*model.EmployeeTask, error) {
	return getTask(ctx, r.db, id)
}

// Create inserts the task and reads it back with the assigned employee.
func (r *EmployeeTaskRepository) Create(ctx context.Context, task *model.EmployeeTask) (*model.EmployeeTask, error) {
	if _, err := r.db.NewInsert().Model(task).Returning("*").Exec(ctx); err != nil {
		return nil, err
	}
	return getTask(ctx, r.db, task.TaskID)
}

// Update saves the changes apply makes and returns the task before and after.
func (r *EmployeeTaskRepository) Update(ctx context.Context, id int, apply func(*model.EmployeeTask)) (before, after *model.EmployeeTask, err error) {
	err = inTx(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		task, err := getTask(ctx, tx, id)
		if err != nil {
			return err
		}

		previous := *task
		before = &previous

		apply(task)

		if _, err := tx.NewUpdate().Model(task).WherePK().Exec(ctx); err != nil {
			return err
		}

		after, err = getTask(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return before, after, nil
}

func (r *EmployeeTaskRepository) Delete(ctx context.Context, id int) (*model.EmployeeTask, error) {
	var deleted *model.EmployeeTask
	err := inTx(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		task, err := getTask(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.NewDelete().Model(task).WherePK().Exec(ctx); err != nil {
			return err
		}
		deleted = task
		return nil
	})
	return deleted, err
}

func getTask(ctx context.Context, db bun.IDB, id int) (*model.EmployeeTask, error) {
	task := new(model.EmployeeTask)
	err := selectTasks(db, task).
		Where("t.task_id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return task, nil
}

package repository

import (
	"context"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
	"github.com/uptrace/bun"
)

type DepartmentRepository struct {
	db *bun.DB
}

func NewDepartmentRepository(db *bun.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) GetAll(ctx context.Context) ([]model.Department, error) {
	departments := []model.Department{}
	err := r.db.NewSelect().
		Model(&departments).
		OrderExpr("d.department_id ASC").
		Scan(ctx)
	return departments, err
}

// GetAvailable returns the departments no manager is assigned to.
func (r *DepartmentRepository) GetAvailable(ctx context.Context) ([]model.Department, error) {
	departments := []model.Department{}
	err := r.db.NewSelect().
		Model(&departments).
		Where("NOT EXISTS (SELECT 1 FROM managers AS m WHERE m.department_id = d.department_id)").
		OrderExpr("d.department_id ASC").
		Scan(ctx)
	return departments, err
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int) (*model.Department, error) {
	return getDepartment(ctx, r.db, id)
}

func (r *DepartmentRepository) Create(ctx context.Context, department *model.Department) (*model.Department, error) {
	if _, err := r.db.NewInsert().Model(department).Returning("*").Exec(ctx); err != nil {
		return nil, err
	}
	return department, nil
}

// Update loads the department, lets apply change it and saves the result.
func (r *DepartmentRepository) Update(ctx context.Context, id int, apply func(*model.Department)) (*model.Department, error) {
	var updated *model.Department
	err := inTx(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		department, err := getDepartment(ctx, tx, id)
		if err != nil {
			return err
		}

		apply(department)

		if _, err := tx.NewUpdate().Model(department).WherePK().Exec(ctx); err != nil {
			return err
		}
		updated = department
		return nil
	})
	return updated, err
}

// Delete removes the department and returns it as it was.
func (r *DepartmentRepository) Delete(ctx context.Context, id int) (*model.Department, error) {
	var deleted *model.Department
	err := inTx(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		department, err := getDepartment(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.NewDelete().Model(department).WherePK().Exec(ctx); err != nil {
			return err
		}
		deleted = department
		return nil
	})
	return deleted, err
}

func getDepartment(ctx context.Context, db bun.IDB, id int) (*model.Department, error) {
	department := new(model.Department)
	err := db.NewSelect().
		Model(department).
		Where("d.department_id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return department, nil
}

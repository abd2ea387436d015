package repository

import (
	"context"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
	"github.com/uptrace/bun"
)

type EmployeeRepository struct {
	db *bun.DB
}

func NewEmployeeRepository(db *bun.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func selectEmployees(db bun.IDB, dest any) *bun.SelectQuery {
	return db.NewSelect().
		Model(dest).
		Relation("Department").
		Relation("Manager")
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	employees := []model.Employee{}
	err := selectEmployees(r.db, &employees).
		OrderExpr("e.employee_id ASC").
		Scan(ctx)
	return employees, err
}

func (r *EmployeeRepository) GetByManager(ctx context.Context, managerID int) ([]model.Employee, error) {
	employees := []model.Employee{}
	err := selectEmployees(r.db, &employees).
		Where("e.manager_id = ?", managerID).
		OrderExpr("e.employee_id ASC").
		Scan(ctx)
	return employees, err
}

func (r *EmployeeRepository) GetByDepartment(ctx context.Context, departmentID int) ([]model.Employee, error) {
	employees := []model.Employee{}
	err := selectEmployees(r.db, &employees).
		Where("e.department_id = ?", departmentID).
		OrderExpr("e.employee_id ASC").
		Scan(ctx)
	return employees, err
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (*model.Employee, error) {
	return getEmployee(ctx, r.db, id)
}

// Create inserts the employee and reads it back with department and manager.
func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	if _, err := r.db.NewInsert().Model(employee).Returning("*").Exec(ctx); err != nil {
		return nil, err
	}
	return getEmployee(ctx, r.db, employee.EmployeeID)
}

func (r *EmployeeRepository) Update(ctx context.Context, id int, apply func(*model.Employee)) (*model.Employee, error) {
	var updated *model.Employee
	err := inTx(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		employee, err := getEmployee(ctx, tx, id)
		if err != nil {
			return err
		}

		apply(employee)

		if _, err := tx.NewUpdate().Model(employee).WherePK().Exec(ctx); err != nil {
			return err
		}

		updated, err = getEmployee(ctx, tx, id)
		return err
	})
	return updated, err
}

// Delete removes the employee together with their tasks.
func (r *EmployeeRepository) Delete(ctx context.Context, id int) (*model.Employee, error) {
	var deleted *model.Employee
	err := inTx(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		employee, err := getEmployee(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.NewDelete().Model(employee).WherePK().Exec(ctx); err != nil {
			return err
		}
		deleted = employee
		return nil
	})
	return deleted, err
}

func getEmployee(ctx context.Context, db bun.IDB, id int) (*model.Employee, error) {
	employee := new(model.Employee)
	err := selectEmployees(db, employee).
		Where("e.employee_id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

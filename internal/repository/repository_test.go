package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func setup(t *testing.T) (*Repositories, context.Context) {
	t.Helper()
	return New(testutil.SetupTestDB(t)), context.Background()
}

func createDepartment(t *testing.T, repos *Repositories, name string) *model.Department {
	t.Helper()
	d, err := repos.Department.Create(context.Background(), &model.Department{DepartmentName: name})
	require.NoError(t, err)
	return d
}

func createEmployee(t *testing.T, repos *Repositories, name string, departmentID int, managerID *int) *model.Employee {
	t.Helper()
	e, err := repos.Employee.Create(context.Background(), &model.Employee{
		EmployeeName: name,
		Email:        name + "@example.com",
		DepartmentID: departmentID,
		ManagerID:    managerID,
	})
	require.NoError(t, err)
	return e
}

func TestDepartmentRepositoryCRUD(t *testing.T) {
	repos, ctx := setup(t)

	eng := createDepartment(t, repos, "Eng")
	ops := createDepartment(t, repos, "Ops")
	assert.NotZero(t, eng.DepartmentID)

	all, err := repos.Department.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Eng", all[0].DepartmentName)
	assert.Equal(t, "Ops", all[1].DepartmentName)

	updated, err := repos.Department.Update(ctx, ops.DepartmentID, func(d *model.Department) {
		d.DepartmentName = "Operations"
	})
	require.NoError(t, err)
	assert.Equal(t, "Operations", updated.DepartmentName)

	got, err := repos.Department.GetByID(ctx, ops.DepartmentID)
	require.NoError(t, err)
	assert.Equal(t, "Operations", got.DepartmentName)

	deleted, err := repos.Department.Delete(ctx, eng.DepartmentID)
	require.NoError(t, err)
	assert.Equal(t, "Eng", deleted.DepartmentName)

	_, err = repos.Department.GetByID(ctx, eng.DepartmentID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRepositoryMissingRows(t *testing.T) {
	repos, ctx := setup(t)

	_, err := repos.Department.Update(ctx, 42, func(*model.Department) {})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = repos.Manager.Delete(ctx, 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = repos.Employee.GetByID(ctx, 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, _, err = repos.EmployeeTask.Update(ctx, 42, func(*model.EmployeeTask) {})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGetAvailableDepartments(t *testing.T) {
	repos, ctx := setup(t)

	eng := createDepartment(t, repos, "Eng")
	ops := createDepartment(t, repos, "Ops")
	createDepartment(t, repos, "Sales")

	_, err := repos.Manager.Create(ctx, &model.Manager{ManagerName: "Bo", DepartmentID: intPtr(eng.DepartmentID)})
	require.NoError(t, err)
	_, err = repos.Manager.Create(ctx, &model.Manager{ManagerName: "Unassigned"})
	require.NoError(t, err)

	available, err := repos.Department.GetAvailable(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(available))
	for _, d := range available {
		names = append(names, d.DepartmentName)
	}
	assert.Equal(t, []string{"Ops", "Sales"}, names)
	assert.NotContains(t, names, eng.DepartmentName)
	assert.Contains(t, names, ops.DepartmentName)
}

func TestManagerRepositoryLoadsDepartment(t *testing.T) {
	repos, ctx := setup(t)
	eng := createDepartment(t, repos, "Eng")

	manager, err := repos.Manager.Create(ctx, &model.Manager{
		ManagerName:   "Bo",
		ManagerSalary: 5000,
		IsAppointed:   true,
		DepartmentID:  intPtr(eng.DepartmentID),
	})
	require.NoError(t, err)
	require.NotNil(t, manager.Department)
	assert.Equal(t, "Eng", manager.Department.DepartmentName)
	assert.True(t, manager.IsAppointed)

	// A department has at most one manager.
	_, err = repos.Manager.Create(ctx, &model.Manager{ManagerName: "Cy", DepartmentID: intPtr(eng.DepartmentID)})
	assert.Error(t, err)
}

func TestEmployeeRepositoryFilters(t *testing.T) {
	repos, ctx := setup(t)
	eng := createDepartment(t, repos, "Eng")
	ops := createDepartment(t, repos, "Ops")

	manager, err := repos.Manager.Create(ctx, &model.Manager{ManagerName: "Bo", DepartmentID: intPtr(eng.DepartmentID)})
	require.NoError(t, err)

	ann := createEmployee(t, repos, "ann", eng.DepartmentID, intPtr(manager.ManagerID))
	createEmployee(t, repos, "cy", ops.DepartmentID, nil)
	createEmployee(t, repos, "di", eng.DepartmentID, intPtr(manager.ManagerID))

	require.NotNil(t, ann.Manager)
	assert.Equal(t, "Bo", ann.Manager.ManagerName)
	require.NotNil(t, ann.Department)
	assert.Equal(t, "Eng", ann.Department.DepartmentName)

	byManager, err := repos.Employee.GetByManager(ctx, manager.ManagerID)
	require.NoError(t, err)
	assert.Len(t, byManager, 2)

	byDepartment, err := repos.Employee.GetByDepartment(ctx, ops.DepartmentID)
	require.NoError(t, err)
	require.Len(t, byDepartment, 1)
	assert.Equal(t, "cy", byDepartment[0].EmployeeName)
	assert.Nil(t, byDepartment[0].Manager)

	none, err := repos.Employee.GetByManager(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEmployeeRepositoryUpdateReloadsRelations(t *testing.T) {
	repos, ctx := setup(t)
	eng := createDepartment(t, repos, "Eng")
	ops := createDepartment(t, repos, "Ops")
	ann := createEmployee(t, repos, "ann", eng.DepartmentID, nil)

	updated, err := repos.Employee.Update(ctx, ann.EmployeeID, func(e *model.Employee) {
		e.DepartmentID = ops.DepartmentID
	})
	require.NoError(t, err)
	assert.Equal(t, "Ops", updated.Department.DepartmentName)
	assert.Equal(t, "ann@example.com", updated.Email)

	_, err = repos.Employee.Update(ctx, ann.EmployeeID, func(e *model.Employee) {
		e.DepartmentID = 999
	})
	assert.Error(t, err)

	got, err := repos.Employee.GetByID(ctx, ann.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, ops.DepartmentID, got.DepartmentID)
}

func TestEmployeeRepositoryCreateRequiresDepartment(t *testing.T) {
	repos, ctx := setup(t)

	_, err := repos.Employee.Create(ctx, &model.Employee{EmployeeName: "ann", DepartmentID: 7})
	assert.Error(t, err)
}

func TestDeletePolicies(t *testing.T) {
	repos, ctx := setup(t)
	eng := createDepartment(t, repos, "Eng")
	ops := createDepartment(t, repos, "Ops")

	manager, err := repos.Manager.Create(ctx, &model.Manager{ManagerName: "Bo", DepartmentID: intPtr(ops.DepartmentID)})
	require.NoError(t, err)

	ann := createEmployee(t, repos, "ann", eng.DepartmentID, intPtr(manager.ManagerID))
	_, err = repos.EmployeeTask.Create(ctx, &model.EmployeeTask{
		TaskName:    "Report",
		TaskDueDate: time.Now().UTC(),
		TaskStatus:  model.TaskStatusPending,
		EmployeeID:  ann.EmployeeID,
	})
	require.NoError(t, err)

	t.Run("department with employees is restricted", func(t *testing.T) {
		_, err := repos.Department.Delete(ctx, eng.DepartmentID)
		assert.Error(t, err)

		_, err = repos.Department.GetByID(ctx, eng.DepartmentID)
		assert.NoError(t, err)
	})

	t.Run("department delete clears its manager", func(t *testing.T) {
		_, err := repos.Department.Delete(ctx, ops.DepartmentID)
		require.NoError(t, err)

		got, err := repos.Manager.GetByID(ctx, manager.ManagerID)
		require.NoError(t, err)
		assert.Nil(t, got.DepartmentID)
		assert.Nil(t, got.Department)
	})

	t.Run("manager delete clears employees", func(t *testing.T) {
		_, err := repos.Manager.Delete(ctx, manager.ManagerID)
		require.NoError(t, err)

		got, err := repos.Employee.GetByID(ctx, ann.EmployeeID)
		require.NoError(t, err)
		assert.Nil(t, got.ManagerID)
	})

	t.Run("employee delete removes tasks", func(t *testing.T) {
		_, err := repos.Employee.Delete(ctx, ann.EmployeeID)
		require.NoError(t, err)

		tasks, err := repos.EmployeeTask.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestEmployeeTaskRepository(t *testing.T) {
	repos, ctx := setup(t)
	eng := createDepartment(t, repos, "Eng")
	ann := createEmployee(t, repos, "ann", eng.DepartmentID, nil)
	cy := createEmployee(t, repos, "cy", eng.DepartmentID, nil)

	due := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	task, err := repos.EmployeeTask.Create(ctx, &model.EmployeeTask{
		TaskName:    "Report",
		TaskDueDate: due,
		TaskStatus:  model.TaskStatusPending,
		EmployeeID:  ann.EmployeeID,
	})
	require.NoError(t, err)
	require.NotNil(t, task.Employee)
	assert.Equal(t, "ann", task.Employee.EmployeeName)
	assert.True(t, due.Equal(task.TaskDueDate))

	before, after, err := repos.EmployeeTask.Update(ctx, task.TaskID, func(m *model.EmployeeTask) {
		m.EmployeeID = cy.EmployeeID
	})
	require.NoError(t, err)
	assert.Equal(t, ann.EmployeeID, before.EmployeeID)
	assert.Equal(t, cy.EmployeeID, after.EmployeeID)
	assert.Equal(t, "cy", after.Employee.EmployeeName)

	byEmployee, err := repos.EmployeeTask.GetByEmployee(ctx, cy.EmployeeID)
	require.NoError(t, err)
	assert.Len(t, byEmployee, 1)

	_, _, err = repos.EmployeeTask.Update(ctx, task.TaskID, func(m *model.EmployeeTask) {
		m.TaskStatus = "done"
	})
	assert.Error(t, err)

	deleted, err := repos.EmployeeTask.Delete(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, "Report", deleted.TaskName)

	all, err := repos.EmployeeTask.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

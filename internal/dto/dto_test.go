package dto

import (
	"testing"
	"time"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

func TestAddDtoValidation(t *testing.T) {
	assert.NoError(t, (&AddDepartmentDto{DepartmentName: "Eng"}).Validate())
	assert.Equal(t, []string{"departmentName"}, fieldsOf(t, (&AddDepartmentDto{}).Validate()))

	employee := &AddEmployeeDto{EmployeeName: "Ann", Email: "not-an-email"}
	assert.ElementsMatch(t, []string{"email", "departmentID"}, fieldsOf(t, employee.Validate()))

	manager := &AddManagerDto{ManagerName: "Bo", ManagerSalary: -1, DepartmentID: ptr(0)}
	assert.ElementsMatch(t, []string{"managerSalary", "departmentID"}, fieldsOf(t, manager.Validate()))

	task := &AddEmployeeTaskDto{TaskName: "Report", EmployeeID: 1}
	assert.Equal(t, []string{"taskDueDate"}, fieldsOf(t, task.Validate()))
}

func TestUpdateDtoValidation(t *testing.T) {
	assert.NoError(t, (&UpdateEmployeeDto{}).Validate())
	assert.Equal(t, []string{"employeeName"}, fieldsOf(t, (&UpdateEmployeeDto{EmployeeName: ptr("")}).Validate()))

	assert.NoError(t, (&UpdateEmployeeTaskStatusDto{TaskStatus: model.TaskStatusInProgress}).Validate())
	assert.Equal(t, []string{"taskStatus"}, fieldsOf(t, (&UpdateEmployeeTaskStatusDto{TaskStatus: "done"}).Validate()))
}

func TestUpdateEmployeeApplyOnlyPresentFields(t *testing.T) {
	m := &model.Employee{
		EmployeeName:   "Ann",
		EmployeeSalary: 1000,
		Designation:    "Engineer",
		DepartmentID:   1,
		ManagerID:      ptr(3),
	}

	(&UpdateEmployeeDto{EmployeeSalary: ptr(1500), DepartmentID: ptr(2)}).Apply(m)

	assert.Equal(t, "Ann", m.EmployeeName)
	assert.Equal(t, 1500, m.EmployeeSalary)
	assert.Equal(t, "Engineer", m.Designation)
	assert.Equal(t, 2, m.DepartmentID)
	assert.Equal(t, ptr(3), m.ManagerID)
}

func TestUpdateEmployeeTaskApply(t *testing.T) {
	due := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	m := &model.EmployeeTask{TaskName: "Old", TaskDescription: "keep", TaskStatus: model.TaskStatusPending, EmployeeID: 1}

	(&UpdateEmployeeTaskDto{TaskName: ptr("New"), TaskDueDate: &due}).Apply(m)
	assert.Equal(t, "New", m.TaskName)
	assert.Equal(t, "keep", m.TaskDescription)
	assert.Equal(t, due, m.TaskDueDate)
	assert.Equal(t, 1, m.EmployeeID)

	(&UpdateEmployeeTaskStatusDto{TaskStatus: model.TaskStatusCompleted}).Apply(m)
	assert.Equal(t, model.TaskStatusCompleted, m.TaskStatus)
}

func TestEmployeeFromModel(t *testing.T) {
	withoutManager := EmployeeFromModel(&model.Employee{
		EmployeeID:   4,
		EmployeeName: "Ann",
		DepartmentID: 1,
		Department:   &model.Department{DepartmentID: 1, DepartmentName: "Eng"},
	})
	assert.Equal(t, "Eng", withoutManager.DepartmentName)
	assert.Nil(t, withoutManager.ManagerID)
	assert.Nil(t, withoutManager.ManagerName)
	assert.Nil(t, withoutManager.ManagerIsAppointed)

	withManager := EmployeeFromModel(&model.Employee{
		EmployeeID: 5,
		ManagerID:  ptr(2),
		Manager:    &model.Manager{ManagerID: 2, ManagerName: "Bo", IsAppointed: true},
	})
	require.NotNil(t, withManager.ManagerName)
	assert.Equal(t, "Bo", *withManager.ManagerName)
	assert.True(t, *withManager.ManagerIsAppointed)
}

func TestAddEmployeeTaskStartsPending(t *testing.T) {
	m := (&AddEmployeeTaskDto{TaskName: "Report", EmployeeID: 2, TaskDueDate: time.Now()}).ToModel()
	assert.Equal(t, model.TaskStatusPending, m.TaskStatus)
	assert.Equal(t, 2, m.EmployeeID)
}

func TestListMappersReturnEmptySlices(t *testing.T) {
	assert.NotNil(t, DepartmentsFromModels(nil))
	assert.Len(t, ManagersFromModels([]model.Manager{{ManagerID: 1}, {ManagerID: 2}}), 2)
}

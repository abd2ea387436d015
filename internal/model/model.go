// Package model holds the bun table models for the organisation schema.
package model

import (
	"time"

	"github.com/uptrace/bun"
)

type Department struct {
	bun.BaseModel `bun:"table:departments,alias:d"`

	DepartmentID   int    `bun:"department_id,pk,autoincrement"`
	DepartmentName string `bun:"department_name,notnull"`
}

// Manager heads at most one department, tracked by the unique DepartmentID.
type Manager struct {
	bun.BaseModel `bun:"table:managers,alias:m"`

	ManagerID     int    `bun:"manager_id,pk,autoincrement"`
	ManagerName   string `bun:"manager_name,notnull"`
	ManagerSalary int    `bun:"manager_salary,notnull"`
	ManagerAge    int    `bun:"manager_age,notnull"`
	Email         string `bun:"email,notnull"`
	Address       string `bun:"address,notnull"`
	Phone         string `bun:"phone,notnull"`
	IsAppointed   bool   `bun:"is_appointed,notnull"`
	DepartmentID  *int   `bun:"department_id"`

	Department *Department `bun:"rel:belongs-to,join:department_id=department_id"`
}

type Employee struct {
	bun.BaseModel `bun:"table:employees,alias:e"`

	EmployeeID     int    `bun:"employee_id,pk,autoincrement"`
	EmployeeName   string `bun:"employee_name,notnull"`
	EmployeeSalary int    `bun:"employee_salary,notnull"`
	EmployeeAge    int    `bun:"employee_age,notnull"`
	Designation    string `bun:"designation,notnull"`
	Email          string `bun:"email,notnull"`
	Address        string `bun:"address,notnull"`
	Phone          string `bun:"phone,notnull"`
	DepartmentID   int    `bun:"department_id,notnull"`
	ManagerID      *int   `bun:"manager_id"`

	Department *Department `bun:"rel:belongs-to,join:department_id=department_id"`
	Manager    *Manager    `bun:"rel:belongs-to,join:manager_id=manager_id"`
}

// TaskStatus values accepted by employee_tasks.task_status.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

type EmployeeTask struct {
	bun.BaseModel `bun:"table:employee_tasks,alias:t"`

	TaskID          int       `bun:"task_id,pk,autoincrement"`
	TaskName        string    `bun:"task_name,notnull"`
	TaskDescription string    `bun:"task_description,notnull"`
	TaskDueDate     time.Time `bun:"task_due_date,notnull"`
	TaskStatus      string    `bun:"task_status,notnull"`
	EmployeeID      int       `bun:"employee_id,notnull"`

	Employee *Employee `bun:"rel:belongs-to,join:employee_id=employee_id"`
}

package dto

import (
	"time"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
)

type GetEmployeeTaskDto struct {
	TaskID          int       `json:"taskID"`
	TaskName        string    `json:"taskName"`
	TaskDescription string    `json:"taskDescription"`
	TaskDueDate     time.Time `json:"taskDueDate"`
	TaskStatus      string    `json:"taskStatus"`
	EmployeeID      int       `json:"employeeID"`
	EmployeeName    string    `json:"employeeName"`
}

// AddEmployeeTaskDto creates a task in the pending status.
type AddEmployeeTaskDto struct {
	TaskName        string    `json:"taskName" validate:"required,max=200"`
	TaskDescription string    `json:"taskDescription" validate:"max=2000"`
	TaskDueDate     time.Time `json:"taskDueDate" validate:"required"`
	EmployeeID      int       `json:"employeeID" validate:"required,gt=0"`
}

func (d *AddEmployeeTaskDto) Validate() error {
	return validate.Struct(d)
}

type UpdateEmployeeTaskDto struct {
	ID              int        `query:"id" json:"-"`
	TaskName        *string    `json:"taskName" validate:"omitempty,min=1,max=200"`
	TaskDescription *string    `json:"taskDescription" validate:"omitempty,max=2000"`
	TaskDueDate     *time.Time `json:"taskDueDate"`
	EmployeeID      *int       `json:"employeeID" validate:"omitempty,gt=0"`
}

func (d *UpdateEmployeeTaskDto) Validate() error {
	return validate.Struct(d)
}

type UpdateEmployeeTaskStatusDto struct {
	ID         int    `query:"id" json:"-"`
	TaskStatus string `json:"taskStatus" validate:"required,oneof=pending in_progress completed"`
}

func (d *UpdateEmployeeTaskStatusDto) Validate() error {
	return validate.Struct(d)
}

// EmployeeIDQuery carries ?employeeId=.
type EmployeeIDQuery struct {
	EmployeeID int `query:"employeeId" json:"-"`
}

func (*EmployeeIDQuery) Validate() error { return nil }

func EmployeeTaskFromModel(m *model.EmployeeTask) GetEmployeeTaskDto {
	out := GetEmployeeTaskDto{
		TaskID:          m.TaskID,
		TaskName:        m.TaskName,
		TaskDescription: m.TaskDescription,
		TaskDueDate:     m.TaskDueDate,
		TaskStatus:      m.TaskStatus,
		EmployeeID:      m.EmployeeID,
	}
	if m.Employee != nil {
		out.EmployeeName = m.Employee.EmployeeName
	}
	return out
}

func EmployeeTasksFromModels(ms []model.EmployeeTask) []GetEmployeeTaskDto {
	out := make([]GetEmployeeTaskDto, 0, len(ms))
	for i := range ms {
		out = append(out, EmployeeTaskFromModel(&ms[i]))
	}
	return out
}

func (d *AddEmployeeTaskDto) ToModel() *model.EmployeeTask {
	return &model.EmployeeTask{
		TaskName:        d.TaskName,
		TaskDescription: d.TaskDescription,
		TaskDueDate:     d.TaskDueDate,
		TaskStatus:      model.TaskStatusPending,
		EmployeeID:      d.EmployeeID,
	}
}

func (d *UpdateEmployeeTaskDto) Apply(m *model.EmployeeTask) {
	if d.TaskName != nil {
		m.TaskName = *d.TaskName
	}
	if d.TaskDescription != nil {
		m.TaskDescription = *d.TaskDescription
	}
	if d.TaskDueDate != nil {
		m.TaskDueDate = *d.TaskDueDate
	}
	if d.EmployeeID != nil {
		m.EmployeeID = *d.EmployeeID
	}
}

func (d *UpdateEmployeeTaskStatusDto) Apply(m *model.EmployeeTask) {
	m.TaskStatus = d.TaskStatus
}

package dto

import "github.com/Nikil-Srinivasan/Stint360-API/internal/model"

// GetEmployeeDto flattens the employee with its department and manager.
// The manager fields are null for an employee without a manager.
type GetEmployeeDto struct {
	EmployeeID         int     `json:"employeeID"`
	EmployeeName       string  `json:"employeeName"`
	EmployeeSalary     int     `json:"employeeSalary"`
	EmployeeAge        int     `json:"employeeAge"`
	Designation        string  `json:"designation"`
	Email              string  `json:"email"`
	Address            string  `json:"address"`
	Phone              string  `json:"phone"`
	DepartmentID       int     `json:"departmentID"`
	DepartmentName     string  `json:"departmentName"`
	ManagerID          *int    `json:"managerID"`
	ManagerName        *string `json:"managerName"`
	ManagerIsAppointed *bool   `json:"managerIsAppointed"`
}

type AddEmployeeDto struct {
	EmployeeName   string `json:"employeeName" validate:"required,max=100"`
	EmployeeSalary int    `json:"employeeSalary" validate:"gte=0"`
	EmployeeAge    int    `json:"employeeAge" validate:"gte=0,lte=150"`
	Designation    string `json:"designation" validate:"max=100"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address" validate:"max=255"`
	Phone          string `json:"phone" validate:"max=32"`
	DepartmentID   int    `json:"departmentID" validate:"required,gt=0"`
	ManagerID      *int   `json:"managerID" validate:"omitempty,gt=0"`
}

func (d *AddEmployeeDto) Validate() error {
	return validate.Struct(d)
}

type UpdateEmployeeDto struct {
	ID             int     `query:"id" json:"-"`
	EmployeeName   *string `json:"employeeName" validate:"omitempty,min=1,max=100"`
	EmployeeSalary *int    `json:"employeeSalary" validate:"omitempty,gte=0"`
	EmployeeAge    *int    `json:"employeeAge" validate:"omitempty,gte=0,lte=150"`
	Designation    *string `json:"designation" validate:"omitempty,max=100"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Address        *string `json:"address" validate:"omitempty,max=255"`
	Phone          *string `json:"phone" validate:"omitempty,max=32"`
	DepartmentID   *int    `json:"departmentID" validate:"omitempty,gt=0"`
	ManagerID      *int    `json:"managerID" validate:"omitempty,gt=0"`
}

func (d *UpdateEmployeeDto) Validate() error {
	return validate.Struct(d)
}

// ManagerIDQuery carries ?managerId=.
type ManagerIDQuery struct {
	ManagerID int `query:"managerId" json:"-"`
}

func (*ManagerIDQuery) Validate() error { return nil }

// DepartmentIDQuery carries ?departmentId=.
type DepartmentIDQuery struct {
	DepartmentID int `query:"departmentId" json:"-"`
}

func (*DepartmentIDQuery) Validate() error { return nil }

func EmployeeFromModel(m *model.Employee) GetEmployeeDto {
	out := GetEmployeeDto{
		EmployeeID:     m.EmployeeID,
		EmployeeName:   m.EmployeeName,
		EmployeeSalary: m.EmployeeSalary,
		EmployeeAge:    m.EmployeeAge,
		Designation:    m.Designation,
		Email:          m.Email,
		Address:        m.Address,
		Phone:          m.Phone,
		DepartmentID:   m.DepartmentID,
		ManagerID:      m.ManagerID,
	}
	if m.Department != nil {
		out.DepartmentName = m.Department.DepartmentName
	}
	if m.Manager != nil {
		out.ManagerName = &m.Manager.ManagerName
		out.ManagerIsAppointed = &m.Manager.IsAppointed
	}
	return out
}

func EmployeesFromModels(ms []model.Employee) []GetEmployeeDto {
	out := make([]GetEmployeeDto, 0, len(ms))
	for i := range ms {
		out = append(out, EmployeeFromModel(&ms[i]))
	}
	return out
}

func (d *AddEmployeeDto) ToModel() *model.Employee {
	return &model.Employee{
		EmployeeName:   d.EmployeeName,
		EmployeeSalary: d.EmployeeSalary,
		EmployeeAge:    d.EmployeeAge,
		Designation:    d.Designation,
		Email:          d.Email,
		Address:        d.Address,
		Phone:          d.Phone,
		DepartmentID:   d.DepartmentID,
		ManagerID:      d.ManagerID,
	}
}

func (d *UpdateEmployeeDto) Apply(m *model.Employee) {
	if d.EmployeeName != nil {
		m.EmployeeName = *d.EmployeeName
	}
	if d.EmployeeSalary != nil {
		m.EmployeeSalary = *d.EmployeeSalary
	}
	if d.EmployeeAge != nil {
		m.EmployeeAge = *d.EmployeeAge
	}
	if d.Designation != nil {
		m.Designation = *d.Designation
	}
	if d.Email != nil {
		m.Email = *d.Email
	}
	if d.Address != nil {
		m.Address = *d.Address
	}
	if d.Phone != nil {
		m.Phone = *d.Phone
	}
	if d.DepartmentID != nil {
		m.DepartmentID = *d.DepartmentID
	}
	if d.ManagerID != nil {
		m.ManagerID = d.ManagerID
	}
}

package dto

import "github.com/Nikil-Srinivasan/Stint360-API/internal/model"

type GetManagerDto struct {
	ManagerID      int    `json:"managerID"`
	ManagerName    string `json:"managerName"`
	ManagerSalary  int    `json:"managerSalary"`
	ManagerAge     int    `json:"managerAge"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	IsAppointed    bool   `json:"isAppointed"`
	DepartmentID   *int   `json:"departmentID"`
	DepartmentName string `json:"departmentName"`
}

type AddManagerDto struct {
	ManagerName   string `json:"managerName" validate:"required,max=100"`
	ManagerSalary int    `json:"managerSalary" validate:"gte=0"`
	ManagerAge    int    `json:"managerAge" validate:"gte=0,lte=150"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address" validate:"max=255"`
	Phone         string `json:"phone" validate:"max=32"`
	IsAppointed   bool   `json:"isAppointed"`
	DepartmentID  *int   `json:"departmentID" validate:"omitempty,gt=0"`
}

func (d *AddManagerDto) Validate() error {
	return validate.Struct(d)
}

type UpdateManagerDto struct {
	ID            int     `query:"id" json:"-"`
	ManagerName   *string `json:"managerName" validate:"omitempty,min=1,max=100"`
	ManagerSalary *int    `json:"managerSalary" validate:"omitempty,gte=0"`
	ManagerAge    *int    `json:"managerAge" validate:"omitempty,gte=0,lte=150"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address" validate:"omitempty,max=255"`
	Phone         *string `json:"phone" validate:"omitempty,max=32"`
	IsAppointed   *bool   `json:"isAppointed"`
	DepartmentID  *int    `json:"departmentID" validate:"omitempty,gt=0"`
}

func (d *UpdateManagerDto) Validate() error {
	return validate.Struct(d)
}

// ManagerFromModel maps m; DepartmentName is filled when the relation was loaded.
func ManagerFromModel(m *model.Manager) GetManagerDto {
	out := GetManagerDto{
		ManagerID:     m.ManagerID,
		ManagerName:   m.ManagerName,
		ManagerSalary: m.ManagerSalary,
		ManagerAge:    m.ManagerAge,
		Email:         m.Email,
		Address:       m.Address,
		Phone:         m.Phone,
		IsAppointed:   m.IsAppointed,
		DepartmentID:  m.DepartmentID,
	}
	if m.Department != nil {
		out.DepartmentName = m.Department.DepartmentName
	}
	return out
}

func ManagersFromModels(ms []model.Manager) []GetManagerDto {
	out := make([]GetManagerDto, 0, len(ms))
	for i := range ms {
		out = append(out, ManagerFromModel(&ms[i]))
	}
	return out
}

func (d *AddManagerDto) ToModel() *model.Manager {
	return &model.Manager{
		ManagerName:   d.ManagerName,
		ManagerSalary: d.ManagerSalary,
		ManagerAge:    d.ManagerAge,
		Email:         d.Email,
		Address:       d.Address,
		Phone:         d.Phone,
		IsAppointed:   d.IsAppointed,
		DepartmentID:  d.DepartmentID,
	}
}

func (d *UpdateManagerDto) Apply(m *model.Manager) {
	if d.ManagerName != nil {
		m.ManagerName = *d.ManagerName
	}
	if d.ManagerSalary != nil {
		m.ManagerSalary = *d.ManagerSalary
	}
	if d.ManagerAge != nil {
		m.ManagerAge = *d.ManagerAge
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
	if d.IsAppointed != nil {
		m.IsAppointed = *d.IsAppointed
	}
	if d.DepartmentID != nil {
		m.DepartmentID = d.DepartmentID
	}
}

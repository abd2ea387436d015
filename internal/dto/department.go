package dto

import "github.com/Nikil-Srinivasan/Stint360-API/internal/model"

type GetDepartmentDto struct {
	DepartmentID   int    `json:"departmentID"`
	DepartmentName string `json:"departmentName"`
}

type AddDepartmentDto struct {
	DepartmentName string `json:"departmentName" validate:"required,max=100"`
}

func (d *AddDepartmentDto) Validate() error {
	return validate.Struct(d)
}

type UpdateDepartmentDto struct {
	ID             int     `query:"id" json:"-"`
	DepartmentName *string `json:"departmentName" validate:"omitempty,min=1,max=100"`
}

func (d *UpdateDepartmentDto) Validate() error {
	return validate.Struct(d)
}

func DepartmentFromModel(m *model.Department) GetDepartmentDto {
	return GetDepartmentDto{
		DepartmentID:   m.DepartmentID,
		DepartmentName: m.DepartmentName,
	}
}

func DepartmentsFromModels(ms []model.Department) []GetDepartmentDto {
	out := make([]GetDepartmentDto, 0, len(ms))
	for i := range ms {
		out = append(out, DepartmentFromModel(&ms[i]))
	}
	return out
}

func (d *AddDepartmentDto) ToModel() *model.Department {
	return &model.Department{DepartmentName: d.DepartmentName}
}

// Apply copies the fields present on d onto m.
func (d *UpdateDepartmentDto) Apply(m *model.Department) {
	if d.DepartmentName != nil {
		m.DepartmentName = *d.DepartmentName
	}
}

package email

import "time"

// PreviewData holds sample data for rendering each template locally.
var PreviewData = map[Template]any{
	TemplateTaskAssigned: TaskAssignedData{
		EmployeeName:    "Jane Doe",
		TaskName:        "Quarterly report",
		TaskDescription: "Collect the department figures and draft the summary.",
		DueDate:         time.Date(2025, time.March, 31, 17, 0, 0, 0, time.UTC),
	},
}

package email

import "time"

// TaskAssignedData feeds the task_assigned template.
type TaskAssignedData struct {
	EmployeeName    string
	TaskName        string
	TaskDescription string
	DueDate         time.Time
}

// SendTaskAssignedEmail tells an employee a task was assigned to them.
func (c *Client) SendTaskAssignedEmail(to string, data TaskAssignedData) error {
	return c.SendEmail(
		to,
		"New task assigned: "+data.TaskName,
		TemplateTaskAssigned,
		data,
	)
}

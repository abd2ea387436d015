package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TaskAssigned is the job type for the task-assigned notification email.
const TaskAssigned = "email:task_assigned"

// TaskAssignedPayload is the JSON payload stored in Redis for TaskAssigned.
type TaskAssignedPayload struct {
	TaskID          int       `json:"task_id"`
	To              string    `json:"to"`
	EmployeeName    string    `json:"employee_name"`
	TaskName        string    `json:"task_name"`
	TaskDescription string    `json:"task_description"`
	DueDate         time.Time `json:"due_date"`
}

// NewTaskAssignedTask builds the asynq task: three retries on the default queue.
func NewTaskAssignedTask(p TaskAssignedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAssigned,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NotifyTaskAssigned enqueues the notification email for p.
func (j *JobService) NotifyTaskAssigned(ctx context.Context, p TaskAssignedPayload) error {
	task, err := NewTaskAssignedTask(p)
	if err != nil {
		return fmt.Errorf("failed to build task assigned job: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task assigned job: %w", err)
	}

	j.logger.Debug().
		Str("job_id", info.ID).
		Int("task_id", p.TaskID).
		Msg("enqueued task assigned email")

	return nil
}

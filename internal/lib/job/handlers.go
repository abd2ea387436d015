package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/config"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type mailer interface {
	SendTaskAssignedEmail(to string, data email.TaskAssignedData) error
}

// InitHandlers creates the dependencies the job handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.mailer = email.NewClient(cfg, logger)
}

func (j *JobService) handleTaskAssignedTask(ctx context.Context, t *asynq.Task) error {
	var p TaskAssignedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal task assigned payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "task_assigned").
		Int("task_id", p.TaskID).
		Str("to", p.To).
		Msg("Processing task assigned email")

	err := j.mailer.SendTaskAssignedEmail(p.To, email.TaskAssignedData{
		EmployeeName:    p.EmployeeName,
		TaskName:        p.TaskName,
		TaskDescription: p.TaskDescription,
		DueDate:         p.DueDate,
	})
	if err != nil {
		j.logger.Error().
			Str("type", "task_assigned").
			Int("task_id", p.TaskID).
			Err(err).
			Msg("Failed to send task assigned email")
		return err
	}

	j.logger.Info().
		Str("type", "task_assigned").
		Int("task_id", p.TaskID).
		Msg("Successfully sent task assigned email")

	return nil
}

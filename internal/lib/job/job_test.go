package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to   string
	data email.TaskAssignedData
	err  error
}

func (f *fakeMailer) SendTaskAssignedEmail(to string, data email.TaskAssignedData) error {
	f.to = to
	f.data = data
	return f.err
}

func newTestJobService(m mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: m, logger: &logger}
}

func testPayload() TaskAssignedPayload {
	return TaskAssignedPayload{
		TaskID:       7,
		To:           "jane@example.com",
		EmployeeName: "Jane",
		TaskName:     "Report",
		DueDate:      time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestNewTaskAssignedTask(t *testing.T) {
	task, err := NewTaskAssignedTask(testPayload())
	require.NoError(t, err)

	assert.Equal(t, TaskAssigned, task.Type())

	var decoded TaskAssignedPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, testPayload(), decoded)
}

func TestHandleTaskAssignedTask(t *testing.T) {
	m := &fakeMailer{}
	j := newTestJobService(m)

	task, err := NewTaskAssignedTask(testPayload())
	require.NoError(t, err)

	require.NoError(t, j.handleTaskAssignedTask(context.Background(), task))
	assert.Equal(t, "jane@example.com", m.to)
	assert.Equal(t, "Report", m.data.TaskName)
	assert.Equal(t, "Jane", m.data.EmployeeName)
}

func TestHandleTaskAssignedTaskMailerError(t *testing.T) {
	j := newTestJobService(&fakeMailer{err: errors.New("resend down")})

	task, err := NewTaskAssignedTask(testPayload())
	require.NoError(t, err)

	assert.EqualError(t, j.handleTaskAssignedTask(context.Background(), task), "resend down")
}

func TestHandleTaskAssignedTaskBadPayload(t *testing.T) {
	j := newTestJobService(&fakeMailer{})

	err := j.handleTaskAssignedTask(context.Background(), asynq.NewTask(TaskAssigned, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

// Package job runs background work on Asynq, a Redis-backed queue.
//
// The API process both enqueues tasks through the client and works them
// off with an embedded worker server.
package job

import (
	"github.com/Nikil-Srinivasan/Stint360-API/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	mailer mailer
	logger *zerolog.Logger
}

// NewJobService creates the client and worker server for cfg.Redis.
// Workers are shared between queues by weight, critical ahead of default and low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers the handlers and starts the workers. It does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskAssigned, j.handleTaskAssignedTask)

	j.logger.Info().Msg("Starting background job server")

	return j.server.Start(mux)
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("failed to close job client")
	}
}

package logger

import (
	"testing"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerServiceWithoutLicense(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())
	assert.Nil(t, svc.GetApplication())
	svc.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestNewLoggerWithServiceLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLoggerWithService(cfg, nil)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	assert.Equal(t, zerolog.DebugLevel, NewLogger("debug", false).GetLevel())
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	logger := zerolog.Nop()
	assert.Equal(t, logger, WithTraceContext(logger, nil))
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, int(tracelog.LogLevelDebug), GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, int(tracelog.LogLevelError), GetPgxTraceLogLevel(zerolog.ErrorLevel))
	assert.Equal(t, int(tracelog.LogLevelNone), GetPgxTraceLogLevel(zerolog.Disabled))
	assert.Equal(t, int(tracelog.LogLevelInfo), GetPgxTraceLogLevel(zerolog.NoLevel))
}

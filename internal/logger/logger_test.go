package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zestagio/chat-relay/internal/logger"
)

func TestInit(t *testing.T) {
	err := logger.Init(logger.NewOptions("error", logger.WithProductionMode(true)))
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, logger.Level.Level())

	zap.L().Named("relay-publisher").Error("inconsistent state", zap.String("message_id", "1234"))
	// {"level":"ERROR","T":"2022-10-09T13:56:47.626+0300","component":"relay-publisher","msg":"inconsistent state","message_id":"1234"}
}

func TestInit_InvalidOptions(t *testing.T) {
	err := logger.Init(logger.NewOptions("trace"))
	require.Error(t, err)

	err = logger.Init(logger.NewOptions("info", logger.WithSentryDsn("not a dsn")))
	require.Error(t, err)
}

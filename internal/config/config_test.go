package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zestagio/chat-relay/internal/config"
)

func TestGlobalConfig_IsProduction(t *testing.T) {
	assert.True(t, config.GlobalConfig{Env: "prod"}.IsProduction())
	assert.False(t, config.GlobalConfig{Env: "dev"}.IsProduction())
}

func TestKafkaConfig_Enabled(t *testing.T) {
	assert.False(t, config.KafkaConfig{}.Enabled())
	assert.True(t, config.KafkaConfig{Brokers: []string{"localhost:9092"}}.Enabled())
}

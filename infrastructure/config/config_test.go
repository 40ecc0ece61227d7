package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "E", cfg.EntryNodeID)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("GRAPH_SERVICE_URL", "https://graph.example.com")
	t.Setenv("ENTRY_NODE_ID", "entry-0")
	t.Setenv("REQUEST_TIMEOUT_MS", "2500")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, "https://graph.example.com", cfg.GraphServiceURL)
	assert.Equal(t, "entry-0", cfg.EntryNodeID)
	assert.Equal(t, 2500*time.Millisecond, cfg.RequestTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("ENVIRONMENT", "something-else")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("GRAPH_SERVICE_URL", "not a url")
	_, err = LoadConfig()
	assert.Error(t, err)
}

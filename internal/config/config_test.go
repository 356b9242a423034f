package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mig-uel/event-emitter-demo/internal/app/components/child"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, Config{
		InitialCount:  9,
		Title:         "event-emitter-demo",
		ChildVariant:  child.Emitting,
		LogLevel:      "info",
		LogFormat:     "console",
		MountSelector: "#app",
	}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("EMITTER_INITIAL_COUNT", "-3")
	t.Setenv("EMITTER_CHILD_VARIANT", "display")
	t.Setenv("EMITTER_LOG_FORMAT", "json")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, -3, cfg.InitialCount)
	assert.Equal(t, child.DisplayOnly, cfg.ChildVariant)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("EMITTER_CHILD_VARIANT", "readonly")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

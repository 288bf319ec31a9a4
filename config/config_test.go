package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSchedulerConfig_File(t *testing.T) {
	dir := t.TempDir()
	body := "port: 8081\nlog_level: debug\nscheduler:\n  round_robin:\n    time_quantum: 4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	cfg, err := LoadSchedulerConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{Port: 8081, LogLevel: "debug", RoundRobinTimeQuantum: 4}, cfg)
}

func TestLoadSchedulerConfig_Defaults(t *testing.T) {
	cfg, err := LoadSchedulerConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, 2, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadSchedulerConfig_EnvOverride(t *testing.T) {
	t.Setenv("CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")
	cfg, err := LoadSchedulerConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.RoundRobinTimeQuantum)
}

func TestLoadSchedulerConfig_RejectsBadQuantum(t *testing.T) {
	dir := t.TempDir()
	body := "scheduler:\n  round_robin:\n    time_quantum: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	_, err := LoadSchedulerConfig(dir)
	assert.Error(t, err)
}

func TestSchedulerConfig_Validate(t *testing.T) {
	assert.NoError(t, (&SchedulerConfig{Port: 1, LogLevel: "warn", RoundRobinTimeQuantum: 1}).Validate())
	assert.Error(t, (&SchedulerConfig{Port: 0, LogLevel: "warn", RoundRobinTimeQuantum: 1}).Validate())
	assert.Error(t, (&SchedulerConfig{Port: 80, LogLevel: "loud", RoundRobinTimeQuantum: 1}).Validate())
}

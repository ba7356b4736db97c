package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: develop
  serviceName: foodbank
  log:
    pretty: true
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
pantry:
  defaultCapacity: 30
storage:
  bucketUrl: "mem://"
`

func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := writeConfig(t)
	t.Chdir(dir)
	t.Setenv("PANTRY_DEFAULTCAPACITY", "75")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "foodbank", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Pantry)
	assert.Equal(t, 75, cfg.Pantry.DefaultCapacity)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Redis = &RedisConfig{Addr: "localhost:6379"}

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultTimezone, cfg.Env.Timezone)
	assert.Equal(t, 50, cfg.Pantry.DefaultCapacity)
	assert.Equal(t, 14, cfg.Pantry.WindowOpenDays)
	assert.Equal(t, 7, cfg.Pantry.WindowCloseDays)
	assert.Equal(t, 1, cfg.Pantry.DefaultHouseholdSize)
	assert.Equal(t, defaultLockTTL, cfg.Redis.LockTTL)
	assert.NotNil(t, cfg.Admin)
	assert.NotNil(t, cfg.Metrics)
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Timezone = "Nowhere/Invalid"

	assert.Equal(t, time.UTC, cfg.Location())
}

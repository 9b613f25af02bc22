package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9000
  read_timeout: 5s
logger:
  env: production
  level: debug
redis:
  address: redis:6379
emailjs:
  service_id: service_abc
  template_id: template_xyz
  user_id: user_123
sheetdb:
  registrations_endpoint: https://sheetdb.io/api/v1/regs
  questions_endpoint: https://sheetdb.io/api/v1/questions
cache_ttls:
  questions: 5m
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 20*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "production", cfg.Logger.Env)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, "service_abc", cfg.EmailJS.ServiceID)
	assert.Equal(t, "https://api.emailjs.com/api/v1.0/email/send", cfg.EmailJS.Endpoint)
	assert.Equal(t, "https://sheetdb.io/api/v1/questions", cfg.SheetDB.QuestionsEndpoint)
	assert.Empty(t, cfg.SheetDB.ScheduleEndpoint)
	assert.Equal(t, "5m", cfg.CacheTTLs.Questions)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("REDIS_ADDRESS", "cache.internal:6380")
	t.Setenv("SHEETDB_ENDPOINT", "https://sheetdb.io/api/v1/override")
	t.Setenv("SHEETDB_SCHEDULE_ENDPOINT", "https://sheetdb.io/api/v1/schedule")
	t.Setenv("EMAILJS_TEMPLATE_ID", "template_env")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Address)
	assert.Equal(t, "https://sheetdb.io/api/v1/override", cfg.SheetDB.RegistrationsEndpoint)
	assert.Equal(t, "https://sheetdb.io/api/v1/schedule", cfg.SheetDB.ScheduleEndpoint)
	assert.Equal(t, "template_env", cfg.EmailJS.TemplateID)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "*", cfg.Server.AllowOrigins)
}

func TestLoad_InvalidConfig(t *testing.T) {
	_, err := Load(writeConfig(t, "sheetdb:\n  questions_endpoint: not a url\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestParseTTLStringOrDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 5*time.Minute, cfg.ParseTTLStringOrDefault("5m", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("soon", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("-1m", time.Hour))
}

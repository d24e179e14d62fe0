package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvOrgID, "")
	path := writeConfig(t, `
endpoint: https://api.example.org/graphql
organization_id: org-1
token_command: pass show agenda
web_url: https://admin.example.org/
timeout_seconds: 5
log_file: /tmp/agenda.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.org/graphql", cfg.Endpoint)
	assert.Equal(t, "org-1", cfg.OrganizationID)
	assert.Equal(t, "pass show agenda", cfg.TokenCommand)
	assert.Equal(t, "https://admin.example.org", cfg.WebURL, "trailing slash trimmed")
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "/tmp/agenda.log", cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvOrgID, "")
	t.Setenv("XDG_STATE_HOME", "/state")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, defaultTimeout, cfg.TimeoutSeconds)
	assert.Equal(t, filepath.Join("/state", appDir, defaultLogFile), cfg.LogFile)
	assert.ErrorIs(t, cfg.Validate(), ErrNoEndpoint)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "endpoint: https://file/graphql\norganization_id: file-org\n")
	t.Setenv(EnvEndpoint, "https://env/graphql")
	t.Setenv(EnvOrgID, "env-org")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env/graphql", cfg.Endpoint)
	assert.Equal(t, "env-org", cfg.OrganizationID)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "endpoint: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/cfg", "agendactl", "config.yaml"), p)
}

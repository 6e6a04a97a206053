package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Workspace.Root)
	assert.Empty(t, cfg.Server.Address)
}

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("WORKSPACE_ROOT", "/home/dev/project")
	t.Setenv("WORKSPACE_SETTINGS_PATH", "/home/dev/project/.vscode/settings.json")
	t.Setenv("SERVER_ADDRESS", "docs01:11000")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("UPLOAD_FORCE_UPLOAD", "crmHelper,portalInit")
	t.Setenv("CONFIG", "/etc/janus-sync.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/home/dev/project", cfg.Workspace.Root)
	assert.Equal(t, "/home/dev/project/.vscode/settings.json", cfg.Workspace.SettingsPath)
	assert.Equal(t, "docs01:11000", cfg.Server.Address)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"crmHelper", "portalInit"}, cfg.Upload.ForceUpload)
	assert.Equal(t, "/etc/janus-sync.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

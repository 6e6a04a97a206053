package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSettingsFile_ForceUploadList(t *testing.T) {
	path := writeSettings(t, `{
		"editor.tabSize": 4,
		"forceUpload": ["crmHelper", " portalInit ", ""]
	}`)

	names, err := NewSettingsFile(path).ForceUploadList()
	require.NoError(t, err)
	assert.Equal(t, []string{"crmHelper", "portalInit"}, names)
}

func TestSettingsFile_MissingFileIsEmptyList(t *testing.T) {
	// A workspace without settings is not misconfigured.
	path := filepath.Join(t.TempDir(), "settings.json")

	names, err := NewSettingsFile(path).ForceUploadList()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSettingsFile_ExtraNamesMerged(t *testing.T) {
	path := writeSettings(t, `{"forceUpload": ["fromFile"]}`)

	names, err := NewSettingsFile(path, "fromFlag").ForceUploadList()
	require.NoError(t, err)
	assert.Equal(t, []string{"fromFlag", "fromFile"}, names)
}

func TestSettingsFile_ExtraNamesSurviveMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	names, err := NewSettingsFile(path, "fromEnv").ForceUploadList()
	require.NoError(t, err)
	assert.Equal(t, []string{"fromEnv"}, names)
}

func TestSettingsFile_WrongShape(t *testing.T) {
	path := writeSettings(t, `{"forceUpload": "not-a-list"}`)

	_, err := NewSettingsFile(path).ForceUploadList()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExemptionsUnavailable)
}

func TestSettingsFile_Unreadable(t *testing.T) {
	path := writeSettings(t, `{"forceUpload": []}`)
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	if _, err := os.ReadFile(path); err == nil {
		t.Skip("running as privileged user; permission bits not enforced")
	}

	_, err := NewSettingsFile(path).ForceUploadList()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExemptionsUnavailable)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{
		Workspace: ClientWorkspace{Root: "/work/portal"},
		Adapter:   ClientAdapter{Address: "localhost:11000", RequestTimeout: defaultRequestTimeout},
	}
	require.NoError(t, valid.validate())

	noRoot := *valid
	noRoot.Workspace.Root = ""
	assert.ErrorIs(t, noRoot.validate(), ErrInvalidWorkspaceConfigs)

	noAddr := *valid
	noAddr.Adapter.Address = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	noTimeout := *valid
	noTimeout.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)
}

package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// defaultRequestTimeout is applied when no timeout was configured
// through any source.
const defaultRequestTimeout = 30 * time.Second

// ClientWorkspace holds the local checkout settings used by the plugin
// runtime.
type ClientWorkspace struct {
	// Root is the absolute path of the workspace the engine operates
	// on; the hash cache file lives directly underneath it.
	Root string
	// SettingsPath is the resolved path of the host editor's settings
	// file carrying the forceUpload exemption list.
	SettingsPath string
}

// ClientAdapter holds network settings used by the client transport
// layer.
type ClientAdapter struct {
	// Address is the script server endpoint. It also serves as the
	// server half of every cache identity (`name@server`).
	Address string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientUpload groups transfer behaviour settings.
type ClientUpload struct {
	// ForceUpload lists additional exempt script names merged on top of
	// the workspace settings list.
	ForceUpload []string
}

// ClientConfig is the top-level plugin-runtime configuration assembled
// from [StructuredConfig].
type ClientConfig struct {
	// Workspace contains local checkout settings.
	Workspace ClientWorkspace
	// Adapter contains transport address and timeout.
	Adapter ClientAdapter
	// Upload contains transfer behaviour settings.
	Upload ClientUpload
}

// GetClientConfig builds and validates the plugin-runtime config view
// from the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the
// fields relevant to the runtime, fills in defaults (settings path,
// request timeout), and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Workspace: ClientWorkspace{
			Root:         cfg.Workspace.Root,
			SettingsPath: cfg.Workspace.SettingsPath,
		},
		Adapter: ClientAdapter{
			Address:        cfg.Server.Address,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Upload: ClientUpload{
			ForceUpload: cfg.Upload.ForceUpload,
		},
	}

	if clientCfg.Workspace.SettingsPath == "" && clientCfg.Workspace.Root != "" {
		clientCfg.Workspace.SettingsPath = filepath.Join(clientCfg.Workspace.Root, ".vscode", "settings.json")
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	return clientCfg, clientCfg.validate()
}

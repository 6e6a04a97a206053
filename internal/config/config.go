// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The janus-sync Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// janus-sync. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Workspace holds the local checkout settings: the workspace root
	// and the path of the host editor's settings file.
	Workspace Workspace `envPrefix:"WORKSPACE_"`

	// Server holds address and timeout settings for the remote script
	// service.
	Server Server `envPrefix:"SERVER_"`

	// Upload holds transfer behaviour settings.
	Upload Upload `envPrefix:"UPLOAD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// Workspace holds settings describing the local checkout the engine
// keeps consistent with the server.
type Workspace struct {
	// Root is the absolute path of the workspace. The hash cache file
	// lives directly underneath it.
	// Env: WORKSPACE_ROOT
	Root string `env:"ROOT"`

	// SettingsPath is the path of the host editor's settings file that
	// carries the forceUpload exemption list. Defaults to
	// <root>/.vscode/settings.json when empty.
	// Env: WORKSPACE_SETTINGS_PATH
	SettingsPath string `env:"SETTINGS_PATH"`
}

// Server holds network settings for the remote script service.
type Server struct {
	// Address is the script server endpoint in "host:port" format.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Upload holds transfer behaviour settings.
type Upload struct {
	// ForceUpload lists script names permanently exempted from conflict
	// checks. The canonical source is the workspace settings file; names
	// given here (env/flags/JSON) are merged on top.
	// Env: UPLOAD_FORCE_UPLOAD (comma-separated)
	ForceUpload []string `env:"FORCE_UPLOAD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

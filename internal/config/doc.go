// Package config loads and merges janus-sync configuration from
// environment variables, command-line flags and an optional JSON file,
// and exposes the read-only workspace settings (the forceUpload
// exemption list) the conflict engine depends on.
//
// Ambient state is never read directly by the engine: everything enters
// through [ClientConfig] and [SettingsFile].
package config

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// WorkspaceSettings mirrors the subset of the host editor's
// settings.json that this core reads. All other keys are ignored.
type WorkspaceSettings struct {
	// ForceUpload is the persisted ordered list of script names
	// permanently excluded from conflict checks. Name-only, not
	// server-scoped.
	ForceUpload []string `json:"forceUpload"`
}

// SettingsFile reads the workspace settings file on every call, so
// edits made in the host editor take effect on the next batch without a
// restart. The file is read-only to this core.
type SettingsFile struct {
	path string

	// extra holds names configured outside the settings file
	// (env/flags/JSON config); they are merged into every result.
	extra []string
}

func NewSettingsFile(path string, extra ...string) *SettingsFile {
	return &SettingsFile{path: path, extra: extra}
}

// ForceUploadList returns the persisted exemption list plus any
// statically configured names.
//
// A missing settings file yields an empty list: a workspace without
// settings is not misconfigured. An unreadable or wrong-shaped file is
// surfaced as [ErrExemptionsUnavailable] so the caller can warn and
// retry the batch instead of silently running it without exemptions.
func (s *SettingsFile) ForceUploadList() ([]string, error) {
	names := make([]string, 0, len(s.extra))
	names = appendTrimmed(names, s.extra)

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return names, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrExemptionsUnavailable, s.path, err)
	}

	var settings WorkspaceSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrExemptionsUnavailable, s.path, err)
	}

	return appendTrimmed(names, settings.ForceUpload), nil
}

func appendTrimmed(dst, src []string) []string {
	for _, name := range src {
		if name = strings.TrimSpace(name); name != "" {
			dst = append(dst, name)
		}
	}
	return dst
}

package config

import "errors"

var (
	// ErrInvalidWorkspaceConfigs indicates invalid local checkout
	// settings (for example, a missing workspace root).
	ErrInvalidWorkspaceConfigs = errors.New("invalid workspace configuration")
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, missing server address or non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrExemptionsUnavailable indicates the workspace settings file
	// carrying the forceUpload exemption list is unreadable or has the
	// wrong shape. Batch annotation is abandoned when this is returned;
	// the caller warns and retries the batch.
	ErrExemptionsUnavailable = errors.New("force upload exemption list unavailable")
)

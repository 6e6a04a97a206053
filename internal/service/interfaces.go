package service

import (
	"context"

	"github.com/janus-tools/janus-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Prompter is the interactive prompt channel: given a question and an
// ordered list of choice strings it returns the chosen string, or ""
// when the user dismissed the prompt without selecting. The engine
// depends only on this contract, never on a concrete UI.
type Prompter interface {
	Ask(ctx context.Context, question string, choices []string) (string, error)
}

// SettingsSource supplies the persisted forceUpload exemption list. It
// is consulted once per batch so that edits made in the host editor
// take effect on the next invocation.
type SettingsSource interface {
	ForceUploadList() ([]string, error)
}

// UploadService drives optimistic-conflict detection and resolution for
// batches of scripts queued for upload.
type UploadService interface {
	// AnnotateBatch marks exempt scripts, populates the last
	// synchronized hash of every non-exempt script from the hash cache
	// and flags suspected divergence against the server-side state.
	// Returns an error (wrapping config.ErrExemptionsUnavailable) when
	// the exemption list cannot be read; the batch is then left
	// untouched and must be retried.
	AnnotateBatch(ctx context.Context, server string, scripts []*models.Script) error

	// EnsureForceUpload traverses the batch strictly in input order,
	// strictly sequentially, resolving each script against the shared
	// batch policy. It partitions the batch into a "no conflict" set
	// and a "force upload" set; denied scripts appear in neither.
	EnsureForceUpload(ctx context.Context, scripts []*models.Script) (noConflict, forceUpload []*models.Script)

	// UpdateHashValues persists the last synchronized hash of every
	// non-exempt, non-conflicted script, merging into the existing
	// cache entries for server.
	UpdateHashValues(server string, scripts []*models.Script)

	// UploadAll runs the full batch flow: annotate, resolve, transfer
	// both sets through the server adapter, refresh hashes from the
	// uploaded local source and persist them.
	UploadAll(ctx context.Context, server string, scripts []*models.Script) (models.UploadSummary, error)
}

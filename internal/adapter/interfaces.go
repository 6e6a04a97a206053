// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The janus-sync Authors

// Package adapter provides transport-layer abstractions for
// communicating with the remote script service of a JANUS/DOCUMENTS
// server.
//
// The primary abstraction is [ServerAdapter], which decouples the
// service layer from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrScriptNotFound] for 404).
package adapter

import (
	"context"

	"github.com/janus-tools/janus-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// remote script service. Implementations are responsible for
// serialisation and for mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// GetScriptNames returns the names of all scripts resident on the
	// server.
	GetScriptNames(ctx context.Context) ([]string, error)

	// GetScriptStates fetches lightweight state descriptors (name and
	// current content hash) for the named scripts. Used by batch
	// annotation to detect divergence without downloading source text.
	GetScriptStates(ctx context.Context, names []string) ([]models.ScriptState, error)

	// DownloadScript retrieves the current server-side source of the
	// named script. Returns [ErrScriptNotFound] (wrapped) if the server
	// does not know the name.
	DownloadScript(ctx context.Context, name string) (models.Script, error)

	// UploadScript replaces the server-side source of the script with
	// its local source text. The conflict engine decides beforehand
	// whether the overwrite is allowed; the adapter transfers blindly.
	UploadScript(ctx context.Context, script *models.Script) error

	// RunScript executes the named script on the server and returns its
	// output.
	RunScript(ctx context.Context, name string) (string, error)
}

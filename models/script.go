package models

// Script is one server-resident script queued for transfer. A batch of
// scripts is created by the caller per upload invocation, annotated by
// the upload service and discarded after the actual transfer.
//
// The cache identity of a script is the (Name, server address) pair;
// the server is not part of the record because a batch always targets a
// single server.
type Script struct {
	// Name identifies the script on the server.
	Name string `json:"name"`

	// Path is the absolute path of the local copy.
	Path string `json:"path"`

	// SourceCode is the local source text queued for upload.
	SourceCode string `json:"source_code"`

	// LastSyncHash is the content hash recorded at the last known-good
	// synchronization. Empty means no hash is known; such a script is
	// unresolved and requires a decision, exactly like one flagged
	// Conflict.
	LastSyncHash string `json:"last_sync_hash,omitempty"`

	// Conflict marks suspected divergence between LastSyncHash and the
	// current server content. It is cleared on a forced upload even
	// though no content comparison resolved the divergence: the local
	// copy became authoritative by user decision, not by verification.
	Conflict bool `json:"conflict,omitempty"`

	// ConflictMode is false for scripts exempted from conflict checks
	// via the forceUpload workspace setting. It is set during batch
	// annotation; exempt scripts bypass hash comparison and prompting.
	ConflictMode bool `json:"conflict_mode,omitempty"`

	// ForceUpload is set once the user, or a remembered batch policy,
	// approved overwriting the server copy.
	ForceUpload bool `json:"force_upload,omitempty"`
}

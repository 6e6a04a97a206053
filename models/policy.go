package models

// BatchPolicy is the remembered "apply to all/none remaining" shortcut
// state of one coordinator invocation. It is reset at batch start and is
// monotonic within the batch: once a flag is latched true it never
// reverts, so a remembered answer governs every later script but never
// an earlier one.
type BatchPolicy struct {
	// AllRemaining forces the upload of every remaining script without
	// prompting.
	AllRemaining bool

	// NoneRemaining denies the upload of every remaining script without
	// prompting.
	NoneRemaining bool
}

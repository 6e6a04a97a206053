package models

// Decision is the outcome of resolving a single script against the
// current batch policy.
type Decision int

const (
	// NoConflict means the script can be uploaded as-is: it is either
	// exempt from conflict checks or its last synchronized hash is known
	// and no divergence is suspected.
	NoConflict Decision = iota

	// UploadForced means the user approved overwriting the server copy
	// for this script only.
	UploadForced

	// UploadDenied means the user declined the upload for this script
	// only; the script is dropped from both output sets.
	UploadDenied

	// AppliedAll means "force upload, and remember for the rest of the
	// batch". The coordinator latches BatchPolicy.AllRemaining.
	AppliedAll

	// AppliedNone means "deny, and remember for the rest of the batch".
	// A dismissed prompt maps here as the fail-safe default. The
	// coordinator latches BatchPolicy.NoneRemaining.
	AppliedNone
)

func (d Decision) String() string {
	switch d {
	case NoConflict:
		return "no conflict"
	case UploadForced:
		return "upload forced"
	case UploadDenied:
		return "upload denied"
	case AppliedAll:
		return "applied to all remaining"
	case AppliedNone:
		return "applied to none remaining"
	default:
		return "unknown decision"
	}
}

package models

// UploadSummary reports the outcome of one batch upload by script name.
// Denied scripts were dropped by the user or a remembered policy;
// Failed scripts were approved but could not be transferred.
type UploadSummary struct {
	Uploaded []string
	Denied   []string
	Failed   []string
}

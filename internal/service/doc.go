// Package service implements the optimistic-conflict engine of
// janus-sync: per-script conflict resolution with "remember for the
// rest of the batch" shortcuts, the strictly sequential batch upload
// coordinator, batch annotation against the hash cache and the
// exemption list, and the post-batch hash cache updater.
//
// The engine never merges divergent content. It only detects possible
// divergence and records a human (or remembered-policy) decision.
package service

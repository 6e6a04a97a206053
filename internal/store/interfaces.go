package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HashCache is the durable mapping from script identity (`name@server`)
// to the content hash recorded at the last known-good synchronization.
//
// All operations favour availability over consistency: a missing,
// corrupted or unreadable cache behaves as an empty one and a failed
// write is dropped. The worst outcome of lost cache state is a
// superfluous prompt on a future batch; false-conflict suspicion is
// safe, false confidence is not.
type HashCache interface {
	// Read returns the name→hash mapping recorded for server. A missing
	// file yields an empty map and lazily creates the file; any other
	// read failure also yields an empty map and is never surfaced.
	Read(server string) map[string]string

	// WriteAll atomically replaces every entry recorded for server with
	// hashes, preserving entries of other servers sharing the file.
	// Write failures are logged and dropped, never retried.
	WriteAll(server string, hashes map[string]string)

	// UpdateAll re-reads the current contents, merges hashes into the
	// entries recorded for server (last writer wins per identity), then
	// rewrites the file via WriteAll.
	UpdateAll(server string, hashes map[string]string)
}

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances,
// shared by all batch hashing paths.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// HashContent computes the hex-encoded SHA-256 digest of the given
// script source using a hasher pulled from the pool.
//
// Digests produced here are the "last synchronized" fingerprints
// persisted in the hash cache, so the algorithm and encoding must stay
// stable across releases: changing either invalidates every cached
// entry and turns the next batch into an all-prompt batch.
//
// Example usage:
//
//	fingerprint := utils.HashContent(script.SourceCode)
func HashContent(source string) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(source))
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}

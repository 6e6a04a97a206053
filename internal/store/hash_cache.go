package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/janus-tools/janus-sync/internal/logger"
)

// CacheFileName is the well-known name of the hash cache file inside
// the workspace root. One file per workspace; entries of different
// servers share it.
const CacheFileName = ".vscode-janus-debug"

// fileHashCache is the file-backed implementation of [HashCache].
//
// Format: one `name@server:hash` record per line, trimmed, no trailing
// blank line. At most one entry per identity; lines that do not parse
// are skipped individually.
//
// The file is process-wide shared mutable state accessed via
// read-merge-write, not an append-only log. Two overlapping batches
// against the same file can lose updates; this is accepted under the
// assumption of effectively-serial, single-user invocation.
type fileHashCache struct {
	path string
	log  *logger.Logger
}

// NewFileHashCache constructs a [HashCache] persisting to
// <workspaceRoot>/.vscode-janus-debug.
func NewFileHashCache(workspaceRoot string, log *logger.Logger) HashCache {
	return &fileHashCache{
		path: filepath.Join(workspaceRoot, CacheFileName),
		log:  log,
	}
}

// Read implements [HashCache].
func (c *fileHashCache) Read(server string) map[string]string {
	hashes := make(map[string]string)
	for key, hash := range c.readAll() {
		if name, ok := strings.CutSuffix(key, "@"+server); ok {
			hashes[name] = hash
		}
	}
	return hashes
}

// WriteAll implements [HashCache].
func (c *fileHashCache) WriteAll(server string, hashes map[string]string) {
	entries := c.readAll()
	for key := range entries {
		if strings.HasSuffix(key, "@"+server) {
			delete(entries, key)
		}
	}
	for name, hash := range hashes {
		entries[name+"@"+server] = hash
	}

	c.writeLines(entries)
}

// UpdateAll implements [HashCache].
func (c *fileHashCache) UpdateAll(server string, hashes map[string]string) {
	merged := c.Read(server)
	for name, hash := range hashes {
		merged[name] = hash
	}

	c.WriteAll(server, merged)
}

// readAll parses the whole cache file into an identity→hash map. Every
// failure path degrades to an empty (or partial) result: the cache must
// never block a transfer.
func (c *fileHashCache) readAll() map[string]string {
	entries := make(map[string]string)

	raw, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		if touchErr := os.WriteFile(c.path, nil, 0o644); touchErr != nil {
			c.log.Debug().Err(touchErr).Str("path", c.path).Msg("hash cache could not be created")
		}
		return entries
	}
	if err != nil {
		c.log.Warn().Err(err).Str("path", c.path).Msg("hash cache unreadable, proceeding with empty cache")
		return entries
	}

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// The hash never contains ':', the name may; split at the last one.
		sep := strings.LastIndex(line, ":")
		if sep <= 0 || sep == len(line)-1 {
			c.log.Debug().Str("line", line).Msg("skipping malformed hash cache line")
			continue
		}
		entries[line[:sep]] = line[sep+1:]
	}

	return entries
}

// writeLines atomically rewrites the cache file as newline-joined
// records in stable (sorted) order, without a trailing blank line.
func (c *fileHashCache) writeLines(entries map[string]string) {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+":"+entries[key])
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), CacheFileName+".tmp-*")
	if err != nil {
		c.log.Warn().Err(err).Str("path", c.path).Msg("hash cache write dropped")
		return
	}

	_, writeErr := tmp.WriteString(strings.Join(lines, "\n"))
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		c.log.Warn().AnErr("write", writeErr).AnErr("close", closeErr).
			Str("path", c.path).Msg("hash cache write dropped")
		_ = os.Remove(tmp.Name())
		return
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		c.log.Warn().Err(err).Str("path", c.path).Msg("hash cache rename dropped")
		_ = os.Remove(tmp.Name())
	}
}

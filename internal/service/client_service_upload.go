package service

import (
	"context"
	"fmt"

	"github.com/janus-tools/janus-sync/internal/adapter"
	"github.com/janus-tools/janus-sync/internal/logger"
	"github.com/janus-tools/janus-sync/internal/store"
	"github.com/janus-tools/janus-sync/internal/utils"
	"github.com/janus-tools/janus-sync/models"
)

type clientUploadService struct {
	cache    store.HashCache
	settings SettingsSource
	adapter  adapter.ServerAdapter
	resolver *conflictResolver
	ids      *utils.UUIDGenerator

	log *logger.Logger
}

func NewClientUploadService(
	cache store.HashCache,
	settings SettingsSource,
	serverAdapter adapter.ServerAdapter,
	prompter Prompter,
	log *logger.Logger,
) UploadService {
	return &clientUploadService{
		cache:    cache,
		settings: settings,
		adapter:  serverAdapter,
		resolver: newConflictResolver(prompter, log),
		ids:      utils.NewUUIDGenerator(),
		log:      log,
	}
}

// AnnotateBatch implements [UploadService].
func (s *clientUploadService) AnnotateBatch(ctx context.Context, server string, scripts []*models.Script) error {
	names, err := s.settings.ForceUploadList()
	if err != nil {
		return fmt.Errorf("read force upload exemptions: %w", err)
	}
	registry := store.NewExemptionRegistry(names)

	cached := s.cache.Read(server)
	states, statesKnown := s.serverStates(ctx, scripts)

	for _, script := range scripts {
		if registry.IsExempt(script.Name) {
			script.ConflictMode = false
			continue
		}

		script.ConflictMode = true
		script.LastSyncHash = cached[script.Name]
		if script.LastSyncHash == "" {
			// No hash on record: unresolved either way, no comparison
			// possible.
			continue
		}

		if !statesKnown {
			// The server state could not be fetched. Suspecting a
			// conflict costs one prompt; assuming none could overwrite
			// remote content.
			script.Conflict = true
			continue
		}
		if serverHash, ok := states[script.Name]; ok && serverHash != script.LastSyncHash {
			script.Conflict = true
		}
	}

	return nil
}

// serverStates fetches the server-side content hashes of the batch and
// indexes them by name. The second return value is false when the fetch
// failed.
func (s *clientUploadService) serverStates(ctx context.Context, scripts []*models.Script) (map[string]string, bool) {
	names := make([]string, 0, len(scripts))
	for _, script := range scripts {
		names = append(names, script.Name)
	}

	states, err := s.adapter.GetScriptStates(ctx, names)
	if err != nil {
		s.log.Warn().Err(err).Msg("server script states unavailable, suspecting conflicts")
		return nil, false
	}

	idx := make(map[string]string, len(states))
	for _, st := range states {
		idx[st.Name] = st.Hash
	}
	return idx, true
}

// EnsureForceUpload implements [UploadService].
//
// The traversal is strictly ordered and strictly sequential: every
// decision may latch the shared batch policy, which must retroactively
// govern only later scripts, never earlier ones.
func (s *clientUploadService) EnsureForceUpload(ctx context.Context, scripts []*models.Script) (noConflict, forceUpload []*models.Script) {
	batchID := s.ids.Generate()
	singleScript := len(scripts) == 1

	var policy models.BatchPolicy
	noConflict = make([]*models.Script, 0, len(scripts))
	forceUpload = make([]*models.Script, 0, len(scripts))

	for _, script := range scripts {
		decision := s.resolver.Resolve(ctx, script, policy, singleScript)
		s.log.Debug().
			Str("batch_id", batchID).
			Str("script", script.Name).
			Stringer("decision", decision).
			Msg("script resolved")

		switch decision {
		case models.NoConflict:
			noConflict = append(noConflict, script)

		case models.AppliedAll:
			policy.AllRemaining = true
			fallthrough
		case models.UploadForced:
			script.ForceUpload = true
			// The local copy is authoritative by user decision; this is
			// not a verification result.
			script.Conflict = false
			forceUpload = append(forceUpload, script)

		case models.AppliedNone:
			policy.NoneRemaining = true

		case models.UploadDenied:
			// Dropped from both sets; not an error.
		}
	}

	return noConflict, forceUpload
}

// UpdateHashValues implements [UploadService].
//
// Exempt scripts are excluded because the exemption bypasses every
// future comparison anyway; still-conflicted scripts are excluded
// because recording an unresolved conflict as "synchronized" would
// corrupt future comparisons.
func (s *clientUploadService) UpdateHashValues(server string, scripts []*models.Script) {
	entries := make(map[string]string, len(scripts))
	for _, script := range scripts {
		if !script.ConflictMode {
			continue
		}
		if script.Conflict {
			continue
		}
		if script.LastSyncHash == "" {
			continue
		}
		entries[script.Name] = script.LastSyncHash
	}

	if len(entries) == 0 {
		return
	}
	s.cache.UpdateAll(server, entries)
}

// UploadAll implements [UploadService].
func (s *clientUploadService) UploadAll(ctx context.Context, server string, scripts []*models.Script) (models.UploadSummary, error) {
	var summary models.UploadSummary
	if len(scripts) == 0 {
		return summary, nil
	}

	if err := s.AnnotateBatch(ctx, server, scripts); err != nil {
		return summary, err
	}

	noConflict, forceUpload := s.EnsureForceUpload(ctx, scripts)

	queue := make([]*models.Script, 0, len(noConflict)+len(forceUpload))
	queue = append(queue, noConflict...)
	queue = append(queue, forceUpload...)

	queued := make(map[string]struct{}, len(queue))
	for _, script := range queue {
		queued[script.Name] = struct{}{}

		if err := s.adapter.UploadScript(ctx, script); err != nil {
			s.log.Warn().Err(err).Str("script", script.Name).Msg("upload failed")
			summary.Failed = append(summary.Failed, script.Name)
			continue
		}

		script.LastSyncHash = utils.HashContent(script.SourceCode)
		summary.Uploaded = append(summary.Uploaded, script.Name)
	}

	for _, script := range scripts {
		if _, ok := queued[script.Name]; !ok {
			summary.Denied = append(summary.Denied, script.Name)
		}
	}

	s.UpdateHashValues(server, scripts)

	return summary, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/janus-tools/janus-sync/internal/logger"
	"github.com/janus-tools/janus-sync/models"
)

// Prompt choice labels offered by the resolver. The prompt channel
// returns one of these strings verbatim, or "" for a dismissal.
const (
	answerYes    = "Force upload"
	answerNo     = "Skip"
	answerYesAll = "Force upload all"
	answerNoAll  = "Skip all"
)

// conflictResolver decides, per script, whether the server copy may be
// overwritten. The decision is pure given the batch policy: the
// resolver never mutates the script or the policy, the coordinator
// applies the outcome.
type conflictResolver struct {
	prompter Prompter
	log      *logger.Logger
}

func newConflictResolver(prompter Prompter, log *logger.Logger) *conflictResolver {
	return &conflictResolver{prompter: prompter, log: log}
}

// Resolve classifies one script.
//
// Exempt scripts and scripts whose last synchronized hash is known and
// unsuspected resolve without a prompt — the only paths bypassing the
// human. A remembered "all/none remaining" answer also skips the
// prompt. Everything else (flagged divergence, or no hash on record)
// is unresolved and asks the prompt channel.
//
// A dismissed prompt — and a failed one — maps to AppliedNone: deny and
// remember for the rest of the batch. A false denial costs one retry, a
// false overwrite destroys remote content.
func (r *conflictResolver) Resolve(ctx context.Context, script *models.Script, policy models.BatchPolicy, singleScript bool) models.Decision {
	if !script.ConflictMode {
		return models.NoConflict
	}
	if !script.Conflict && script.LastSyncHash != "" {
		return models.NoConflict
	}

	if policy.AllRemaining {
		return models.AppliedAll
	}
	if policy.NoneRemaining {
		return models.AppliedNone
	}

	question := r.question(script)
	choices := []string{answerYes, answerNo}
	if !singleScript {
		choices = append(choices, answerYesAll, answerNoAll)
	}

	answer, err := r.prompter.Ask(ctx, question, choices)
	if err != nil {
		r.log.Warn().Err(err).Str("script", script.Name).
			Msg("prompt failed, denying remaining uploads")
		return models.AppliedNone
	}

	switch answer {
	case answerYes:
		return models.UploadForced
	case answerNo:
		return models.UploadDenied
	case answerYesAll:
		return models.AppliedAll
	case answerNoAll:
		return models.AppliedNone
	default:
		// Dismissed, or an answer outside the offered choices.
		return models.AppliedNone
	}
}

// question words the prompt differently for a script known to have
// changed on the server and one whose server state is simply unknown.
func (r *conflictResolver) question(script *models.Script) string {
	if script.LastSyncHash != "" {
		return fmt.Sprintf("%s was changed on server, force upload?", script.Name)
	}
	return fmt.Sprintf("%s might have changed on server (no hash value available), force upload?", script.Name)
}

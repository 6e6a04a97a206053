package service

import (
	"context"
	"errors"
	"testing"

	"github.com/janus-tools/janus-sync/internal/logger"
	"github.com/janus-tools/janus-sync/internal/mock"
	"github.com/janus-tools/janus-sync/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestResolver(ctrl *gomock.Controller) (*conflictResolver, *mock.MockPrompter) {
	prompter := mock.NewMockPrompter(ctrl)
	return newConflictResolver(prompter, logger.Nop()), prompter
}

func TestConflictResolver_ExemptScript_NoPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, _ := newTestResolver(ctrl)
	script := &models.Script{Name: "portal:cleanup", ConflictMode: false, Conflict: true}

	decision := resolver.Resolve(context.Background(), script, models.BatchPolicy{}, false)
	assert.Equal(t, models.NoConflict, decision)
}

func TestConflictResolver_KnownHashUnsuspected_NoPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, _ := newTestResolver(ctrl)
	script := &models.Script{Name: "crmTicket", ConflictMode: true, Conflict: false, LastSyncHash: "abc"}

	decision := resolver.Resolve(context.Background(), script, models.BatchPolicy{}, false)
	assert.Equal(t, models.NoConflict, decision)
}

func TestConflictResolver_PolicyLatches_SkipPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, _ := newTestResolver(ctrl)
	script := &models.Script{Name: "crmTicket", ConflictMode: true, Conflict: true, LastSyncHash: "abc"}

	decision := resolver.Resolve(context.Background(), script, models.BatchPolicy{AllRemaining: true}, false)
	assert.Equal(t, models.AppliedAll, decision)

	decision = resolver.Resolve(context.Background(), script, models.BatchPolicy{NoneRemaining: true}, false)
	assert.Equal(t, models.AppliedNone, decision)
}

func TestConflictResolver_AnswerMapping(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   models.Decision
	}{
		{"force upload", answerYes, models.UploadForced},
		{"skip", answerNo, models.UploadDenied},
		{"force upload all", answerYesAll, models.AppliedAll},
		{"skip all", answerNoAll, models.AppliedNone},
		{"dismissed", "", models.AppliedNone},
		{"unknown answer", "maybe", models.AppliedNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resolver, prompter := newTestResolver(ctrl)
			script := &models.Script{Name: "crmTicket", ConflictMode: true, Conflict: true, LastSyncHash: "abc"}

			prompter.EXPECT().
				Ask(gomock.Any(), "crmTicket was changed on server, force upload?",
					[]string{answerYes, answerNo, answerYesAll, answerNoAll}).
				Return(tt.answer, nil)

			decision := resolver.Resolve(context.Background(), script, models.BatchPolicy{}, false)
			assert.Equal(t, tt.want, decision)
		})
	}
}

func TestConflictResolver_NoHash_AlwaysPrompts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, prompter := newTestResolver(ctrl)
	// Conflict is false, but without a hash on record the script is
	// unresolved and must reach the prompt channel.
	script := &models.Script{Name: "newScript", ConflictMode: true, Conflict: false, LastSyncHash: ""}

	prompter.EXPECT().
		Ask(gomock.Any(), "newScript might have changed on server (no hash value available), force upload?", gomock.Any()).
		Return(answerYes, nil)

	decision := resolver.Resolve(context.Background(), script, models.BatchPolicy{}, false)
	assert.Equal(t, models.UploadForced, decision)
}

func TestConflictResolver_SingleScript_TwoChoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, prompter := newTestResolver(ctrl)
	script := &models.Script{Name: "crmTicket", ConflictMode: true, Conflict: true, LastSyncHash: "abc"}

	prompter.EXPECT().
		Ask(gomock.Any(), gomock.Any(), []string{answerYes, answerNo}).
		Return(answerNo, nil)

	decision := resolver.Resolve(context.Background(), script, models.BatchPolicy{}, true)
	assert.Equal(t, models.UploadDenied, decision)
}

func TestConflictResolver_PromptError_DeniesRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, prompter := newTestResolver(ctrl)
	script := &models.Script{Name: "crmTicket", ConflictMode: true, Conflict: true, LastSyncHash: "abc"}

	prompter.EXPECT().
		Ask(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("tty gone"))

	decision := resolver.Resolve(context.Background(), script, models.BatchPolicy{}, false)
	assert.Equal(t, models.AppliedNone, decision)
}

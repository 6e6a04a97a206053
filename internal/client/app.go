package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/janus-tools/janus-sync/internal/adapter"
	"github.com/janus-tools/janus-sync/internal/config"
	"github.com/janus-tools/janus-sync/internal/logger"
	"github.com/janus-tools/janus-sync/internal/service"
	"github.com/janus-tools/janus-sync/models"
)

// scriptExtension is the file suffix of server scripts in the local
// checkout.
const scriptExtension = ".js"

// App runs one batch-upload pass: list the server-resident scripts,
// collect their local copies from the workspace and push them through
// the conflict engine.
type App struct {
	upload  service.UploadService
	adapter adapter.ServerAdapter
	cfg     *config.ClientConfig

	log *logger.Logger
}

func NewApp(
	upload service.UploadService,
	serverAdapter adapter.ServerAdapter,
	cfg *config.ClientConfig,
	log *logger.Logger,
) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("client app: %w", config.ErrInvalidWorkspaceConfigs)
	}
	return &App{
		upload:  upload,
		adapter: serverAdapter,
		cfg:     cfg,
		log:     log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	names, err := a.adapter.GetScriptNames(ctx)
	if err != nil {
		return fmt.Errorf("list server scripts: %w", err)
	}

	scripts := a.loadLocalScripts(names)
	if len(scripts) == 0 {
		a.log.Info().Msg("no local copies of server scripts found, nothing to upload")
		return nil
	}

	summary, err := a.upload.UploadAll(ctx, a.cfg.Adapter.Address, scripts)
	if err != nil {
		return fmt.Errorf("upload batch: %w", err)
	}

	printSummary(summary)
	return nil
}

// loadLocalScripts reads the workspace copy of every named script.
// Scripts without a local copy are skipped: they exist on the server
// only and there is nothing to upload.
func (a *App) loadLocalScripts(names []string) []*models.Script {
	scripts := make([]*models.Script, 0, len(names))
	for _, name := range names {
		path := filepath.Join(a.cfg.Workspace.Root, name+scriptExtension)

		source, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				a.log.Debug().Str("script", name).Msg("no local copy, skipped")
			} else {
				a.log.Warn().Err(err).Str("script", name).Msg("local copy unreadable, skipped")
			}
			continue
		}

		scripts = append(scripts, &models.Script{
			Name:       name,
			Path:       path,
			SourceCode: string(source),
		})
	}
	return scripts
}

func printSummary(summary models.UploadSummary) {
	fmt.Printf("Uploaded: %d\n", len(summary.Uploaded))
	if len(summary.Uploaded) > 0 {
		fmt.Printf("  %s\n", strings.Join(summary.Uploaded, ", "))
	}
	if len(summary.Denied) > 0 {
		fmt.Printf("Skipped: %d\n  %s\n", len(summary.Denied), strings.Join(summary.Denied, ", "))
	}
	if len(summary.Failed) > 0 {
		fmt.Printf("Failed: %d\n  %s\n", len(summary.Failed), strings.Join(summary.Failed, ", "))
	}
}

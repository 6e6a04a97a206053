package main

import (
	"fmt"

	"github.com/janus-tools/janus-sync/internal/adapter"
	"github.com/janus-tools/janus-sync/internal/client"
	"github.com/janus-tools/janus-sync/internal/config"
	"github.com/janus-tools/janus-sync/internal/logger"
	"github.com/janus-tools/janus-sync/internal/service"
	"github.com/janus-tools/janus-sync/internal/store"
	"github.com/janus-tools/janus-sync/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewPluginLogger("janus-sync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	hashCache := store.NewFileHashCache(cfg.Workspace.Root, log)
	settings := config.NewSettingsFile(cfg.Workspace.SettingsPath, cfg.Upload.ForceUpload...)

	prompter, err := tui.New(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	uploadService := service.NewClientUploadService(hashCache, settings, serverAdapter, prompter, log)

	app, err := client.NewApp(uploadService, serverAdapter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

package main

import (
	"context"
	"fmt"

	"github.com/mkarev/go-break-ledger/internal/adapter"
	"github.com/mkarev/go-break-ledger/internal/client"
	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/service"
	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("break-ledger-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, cfg, log)

	ui := tui.New(services, cfg.Views, log)

	app := client.NewApp(services, ui, log)

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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-order-intake/internal/adapter"
	"github.com/MKhiriev/go-order-intake/internal/client"
	"github.com/MKhiriev/go-order-intake/internal/config"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/service"
	"github.com/MKhiriev/go-order-intake/internal/store"
	"github.com/MKhiriev/go-order-intake/internal/tui"
	"github.com/MKhiriev/go-order-intake/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "Print build information and exit")
	opts := client.RegisterFlags(flag.CommandLine)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	if *showVersion {
		fmt.Println(tui.RenderBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
		return 0
	}
	opts.Files = flag.Args()

	log := logger.NewClientLogger("order-intake", cfg.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ingestionAdapter, err := adapter.NewHTTPIngestionAdapter(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create ingestion adapter")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	storages, err := store.NewClientStorages(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create client storages")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer storages.Close()

	services := service.NewClientServices(storages, ingestionAdapter, cfg, log)
	ui := tui.New(services.UploadService, log)

	app, err := client.NewApp(services, ui, opts, os.Stdout, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		return 2
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

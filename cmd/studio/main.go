package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-canvas-studio/internal/config"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/studio"
	"github.com/MKhiriev/go-canvas-studio/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewStudioLogger("studio-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := studio.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init studio app error")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("studio start error")
	}

	<-ctx.Done()

	// persist the draft so the next launch picks up where this one left off
	if err = app.SaveDraft(context.Background()); err != nil {
		log.Warn().Err(err).Msg("failed to save draft on shutdown")
	}

	app.Stop()
	log.Info().Msg("studio shutdown complete")
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

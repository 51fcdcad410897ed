// Binary voldash generates the snapshot once and serves it until interrupted.
package main

import (
	"context"
	"flag"
	"os"
	ossignal "os/signal"
	"syscall"

	"voldash/internal/config"
	"voldash/internal/dataset"
	"voldash/internal/metrics"
	"voldash/internal/series"
	"voldash/internal/server"
	"voldash/internal/util"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config yaml")
	flag.Parse()

	cfg, err := config.LoadRuntime(*configPath)
	if err != nil {
		boot := util.NewLogger("info")
		boot.Fatal().Err(err).Str("path", *configPath).Msg("load config")
	}
	log := util.NewLogger(cfg.App.LogLevel).With().Str("env", cfg.App.Env).Logger()

	opts, err := cfg.Generator.Options()
	if err != nil {
		log.Fatal().Err(err).Msg("generator options")
	}
	lengths, err := cfg.Generator.DomainLengths()
	if err != nil {
		log.Fatal().Err(err).Msg("generator lengths")
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	table, err := dataset.Build(ctx, series.NewGenerator(opts...), lengths, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build snapshot")
	}

	metricsSrv := metrics.Serve(cfg.App.MetricsAddr)
	defer metricsSrv.Close()
	log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")

	srv := server.New(cfg.App.ListenAddr, table, log, server.WithHeartbeat(cfg.Stream.Heartbeat()))
	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("api stopped")
		return
	}
	log.Info().Msg("shutting down")
}

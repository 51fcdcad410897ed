// Binary export generates one snapshot and writes every dataset to disk.
package main

import (
	"context"
	"flag"

	"voldash/internal/config"
	"voldash/internal/dataset"
	"voldash/internal/export"
	"voldash/internal/series"
	"voldash/internal/util"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config yaml")
	outDir := flag.String("out", "", "output directory (overrides export.dir)")
	flag.Parse()

	cfg, err := config.LoadRuntime(*configPath)
	if err != nil {
		boot := util.NewLogger("info")
		boot.Fatal().Err(err).Str("path", *configPath).Msg("load config")
	}
	log := util.NewLogger(cfg.App.LogLevel)
	if *outDir != "" {
		cfg.Export.Dir = *outDir
	}

	formats, err := export.ParseFormats(cfg.Export.Formats)
	if err != nil {
		log.Fatal().Err(err).Msg("export formats")
	}
	opts, err := cfg.Generator.Options()
	if err != nil {
		log.Fatal().Err(err).Msg("generator options")
	}
	lengths, err := cfg.Generator.DomainLengths()
	if err != nil {
		log.Fatal().Err(err).Msg("generator lengths")
	}

	table, err := dataset.Build(context.Background(), series.NewGenerator(opts...), lengths, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build snapshot")
	}
	paths, err := export.Dir(cfg.Export.Dir, table, formats, cfg.Export.Precision)
	if err != nil {
		log.Fatal().Err(err).Int("written", len(paths)).Msg("export")
	}
	log.Info().
		Str("snapshot", table.ID()).
		Str("dir", cfg.Export.Dir).
		Int("files", len(paths)).
		Msg("export complete")
}

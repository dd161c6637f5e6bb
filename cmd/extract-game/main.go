// Package main provides the end-to-end extraction command: it runs the
// external extraction tool against a game data file, converts the resulting
// dump, and writes the game document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/umtconv/internal/config"
	"github.com/cory-johannsen/umtconv/internal/convert"
	"github.com/cory-johannsen/umtconv/internal/extractor"
	"github.com/cory-johannsen/umtconv/internal/observability"
	"github.com/cory-johannsen/umtconv/internal/report"
)

func main() {
	dataFile := flag.String("data", "", "path to the game data file")
	outPath := flag.String("out", "", "path to write the game document")
	toolFlag := flag.String("tool", "", "path to the extraction tool executable")
	keepFlag := flag.String("keep-dump", "", "optional directory to preserve the raw dump in")
	reportPath := flag.String("report", "", "optional path for a YAML conversion report")
	configPath := flag.String("config", "", "optional path to a configuration file")
	flag.Parse()

	if *dataFile == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: extract-game -data <data.win> -out <file> [-tool <path>] [-keep-dump <dir>] [-report <file>] [-config <file>]")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging, "extract-game")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	// Flags override the configuration file.
	toolPath := cfg.Extractor.ToolPath
	if *toolFlag != "" {
		toolPath = *toolFlag
	}
	keepDump := cfg.Extractor.KeepDumpDir
	if *keepFlag != "" {
		keepDump = *keepFlag
	}

	located, err := extractor.Locate(toolPath)
	if err != nil {
		logger.Fatal("locating extraction tool", zap.Error(err))
	}
	logger.Info("extraction tool located", zap.String("path", located))

	runner := extractor.NewRunner(located, cfg.Extractor.Timeout)
	converter := convert.New(logger, cfg.Converter)
	pipeline := extractor.NewPipeline(logger, runner, converter, keepDump)

	start := time.Now()
	result, err := pipeline.Extract(context.Background(), *dataFile, *outPath)
	if err != nil {
		logger.Fatal("extraction failed", zap.Error(err))
	}

	run := report.New(*dataFile, *outPath, result, start)
	run.Log(logger)
	if *reportPath != "" {
		if err := run.Write(*reportPath); err != nil {
			logger.Fatal("writing report", zap.Error(err))
		}
	}
}

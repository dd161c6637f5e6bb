// Package main provides the dump-to-document conversion command: it turns an
// existing extraction dump directory into the game document.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/umtconv/internal/config"
	"github.com/cory-johannsen/umtconv/internal/convert"
	"github.com/cory-johannsen/umtconv/internal/gamedoc"
	"github.com/cory-johannsen/umtconv/internal/observability"
	"github.com/cory-johannsen/umtconv/internal/report"
)

func main() {
	dumpDir := flag.String("dump", "", "path to the extraction dump directory")
	outPath := flag.String("out", "", "path to write the game document")
	reportPath := flag.String("report", "", "optional path for a YAML conversion report")
	configPath := flag.String("config", "", "optional path to a configuration file")
	flag.Parse()

	if *dumpDir == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: convert-dump -dump <dir> -out <file> [-report <file>] [-config <file>]")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging, "convert-dump")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	start := time.Now()
	converter := convert.New(logger, cfg.Converter)
	result, err := converter.Convert(*dumpDir)
	if err != nil {
		logger.Fatal("conversion failed", zap.Error(err))
	}
	if err := gamedoc.Write(result.Document, *outPath); err != nil {
		logger.Fatal("writing document", zap.Error(err))
	}

	run := report.New(*dumpDir, *outPath, result, start)
	run.Log(logger)
	if *reportPath != "" {
		if err := run.Write(*reportPath); err != nil {
			logger.Fatal("writing report", zap.Error(err))
		}
	}
}

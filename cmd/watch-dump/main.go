// Package main provides the watch command: it converts a dump directory once,
// then rebuilds the game document whenever the dump changes, until interrupted.
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
	"github.com/cory-johannsen/umtconv/internal/gamedoc"
	"github.com/cory-johannsen/umtconv/internal/observability"
	"github.com/cory-johannsen/umtconv/internal/report"
	"github.com/cory-johannsen/umtconv/internal/server"
	"github.com/cory-johannsen/umtconv/internal/watch"
)

func main() {
	dumpDir := flag.String("dump", "", "path to the extraction dump directory")
	outPath := flag.String("out", "", "path to write the game document")
	configPath := flag.String("config", "", "optional path to a configuration file")
	flag.Parse()

	if *dumpDir == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: watch-dump -dump <dir> -out <file> [-config <file>]")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging, "watch-dump")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	converter := convert.New(logger, cfg.Converter)
	rebuild := func() error {
		start := time.Now()
		result, err := converter.Convert(*dumpDir)
		if err != nil {
			return err
		}
		if err := gamedoc.Write(result.Document, *outPath); err != nil {
			return err
		}
		report.New(*dumpDir, *outPath, result, start).Log(logger)
		return nil
	}

	// A dump that cannot be converted at startup is fatal; once watching,
	// failed rebuilds leave the previous document in place.
	if err := rebuild(); err != nil {
		logger.Fatal("initial conversion failed", zap.Error(err))
	}

	watcher, err := watch.New(logger, *dumpDir, cfg.Watch.Debounce, rebuild)
	if err != nil {
		logger.Fatal("starting watcher", zap.Error(err))
	}

	if err := server.Run(context.Background(), logger, "dump-watcher", watcher); err != nil {
		logger.Fatal("watcher error", zap.Error(err))
	}
}

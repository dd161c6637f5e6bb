package extractor

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/umtconv/internal/convert"
	"github.com/cory-johannsen/umtconv/internal/gamedoc"
)

// Pipeline runs the full extraction: dump a game data file into a staging
// directory, optionally preserve the dump for inspection, convert, and write
// the document.
type Pipeline struct {
	logger    *zap.Logger
	runner    *Runner
	converter *convert.Converter
	keepDump  string
}

// NewPipeline constructs a Pipeline. keepDump names a directory the staged
// dump tree is copied into before conversion; empty disables the copy.
//
// Precondition: logger, runner, and converter must be non-nil.
// Postcondition: returns a non-nil Pipeline.
func NewPipeline(logger *zap.Logger, runner *Runner, converter *convert.Converter, keepDump string) *Pipeline {
	return &Pipeline{
		logger:    logger,
		runner:    runner,
		converter: converter,
		keepDump:  keepDump,
	}
}

// Extract runs the dump-and-convert pipeline for one data file and returns
// the conversion result for reporting.
//
// Precondition: dataFile must exist; its absence fails before the tool runs.
// Postcondition: on success the document is written to outputPath and the
// staging directory is gone; nothing else persists between runs.
func (p *Pipeline) Extract(ctx context.Context, dataFile, outputPath string) (*convert.Result, error) {
	if _, err := os.Stat(dataFile); err != nil {
		return nil, fmt.Errorf("data file %s not accessible: %w", dataFile, err)
	}

	staging := filepath.Join(os.TempDir(), "umtconv-"+uuid.New().String())
	dumpDir := filepath.Join(staging, "dump")
	if err := os.MkdirAll(dumpDir, 0755); err != nil {
		return nil, fmt.Errorf("creating staging directory %s: %w", dumpDir, err)
	}
	defer os.RemoveAll(staging)

	p.logger.Info("running extraction tool",
		zap.String("data_file", dataFile), zap.String("staging", dumpDir))
	if err := p.runner.Dump(ctx, dataFile, dumpDir); err != nil {
		return nil, err
	}

	if p.keepDump != "" {
		if err := copyTree(dumpDir, p.keepDump); err != nil {
			return nil, fmt.Errorf("preserving dump in %s: %w", p.keepDump, err)
		}
		p.logger.Info("dump preserved", zap.String("dir", p.keepDump))
	}

	result, err := p.converter.Convert(dumpDir)
	if err != nil {
		return nil, err
	}
	if err := gamedoc.Write(result.Document, outputPath); err != nil {
		return nil, err
	}
	return result, nil
}

// copyTree copies the tree rooted at src into dst, creating dst and
// overwriting files that already exist there.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
}

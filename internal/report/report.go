// Package report records what one conversion run did: identifiers, paths,
// per-category counts, warnings, and timing, with an optional YAML artifact.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/umtconv/internal/convert"
)

// Counts holds the per-category entity totals of one conversion.
type Counts struct {
	Textures int `yaml:"textures"`
	Sprites  int `yaml:"sprites"`
	Objects  int `yaml:"objects"`
	Rooms    int `yaml:"rooms"`
	Sounds   int `yaml:"sounds"`
}

// Report is the machine-readable record of one conversion run. It is not
// part of the document compatibility contract; the YAML artifact exists for
// operators and CI, not for the downstream loader.
type Report struct {
	RunID            string    `yaml:"run_id"`
	Source           string    `yaml:"source"`
	Output           string    `yaml:"output"`
	Counts           Counts    `yaml:"counts"`
	Warnings         []string  `yaml:"warnings"`
	SynthesizedRooms bool      `yaml:"synthesized_rooms"`
	StartedAt        time.Time `yaml:"started_at"`
	Duration         string    `yaml:"duration"`
}

// New builds a report from a finished conversion.
//
// Precondition: result must be non-nil with a non-nil document; startedAt is
// when the run began.
// Postcondition: returns a report with a fresh run id, counts taken from the
// document, and a copied (never shared, never nil) warning list.
func New(source, output string, result *convert.Result, startedAt time.Time) *Report {
	doc := result.Document
	return &Report{
		RunID:  uuid.New().String(),
		Source: source,
		Output: output,
		Counts: Counts{
			Textures: len(doc.Textures),
			Sprites:  len(doc.Sprites),
			Objects:  len(doc.Objects),
			Rooms:    len(doc.Rooms),
			Sounds:   len(doc.Sounds),
		},
		Warnings:         append([]string{}, result.Warnings...),
		SynthesizedRooms: result.Synthesized,
		StartedAt:        startedAt,
		Duration:         time.Since(startedAt).Round(time.Millisecond).String(),
	}
}

// Log emits the one-line run summary every conversion gets regardless of
// whether a YAML artifact was requested.
func (r *Report) Log(logger *zap.Logger) {
	logger.Info("conversion complete",
		zap.String("run_id", r.RunID),
		zap.String("source", r.Source),
		zap.String("output", r.Output),
		zap.Int("textures", r.Counts.Textures),
		zap.Int("sprites", r.Counts.Sprites),
		zap.Int("objects", r.Counts.Objects),
		zap.Int("rooms", r.Counts.Rooms),
		zap.Int("sounds", r.Counts.Sounds),
		zap.Int("warnings", len(r.Warnings)),
		zap.Bool("synthesized_rooms", r.SynthesizedRooms),
		zap.String("duration", r.Duration),
	)
}

// Write serialises the report as YAML at path, creating parent directories.
func (r *Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("serialising report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating report directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report to %s: %w", path, err)
	}
	return nil
}

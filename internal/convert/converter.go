// Package convert turns a dump tree into the final game document: one loader
// per asset category, a default synthesizer for the room category, and an
// orchestrator that runs them in dependency order and assembles the result.
package convert

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cory-johannsen/umtconv/internal/config"
	"github.com/cory-johannsen/umtconv/internal/dump"
	"github.com/cory-johannsen/umtconv/internal/gamedoc"
)

// Converter runs the full dump-to-document conversion.
type Converter struct {
	logger    *zap.Logger
	codeLimit int
}

// New constructs a Converter.
//
// Precondition: logger must be non-nil.
// Postcondition: returns a non-nil Converter.
func New(logger *zap.Logger, cfg config.ConverterConfig) *Converter {
	return &Converter{logger: logger, codeLimit: cfg.CodeLimit}
}

// Result carries the assembled document plus the run facts a caller needs
// for reporting.
type Result struct {
	Document *gamedoc.Document
	// Warnings lists every per-item absorption and reference problem, in the
	// order encountered.
	Warnings []string
	// Synthesized reports whether the room list came from the default
	// synthesizer rather than dump data.
	Synthesized bool
}

// Convert converts the dump tree rooted at root into a document. Categories
// are processed in a fixed order because later categories resolve references
// against identifiers assigned by earlier ones. Per-item problems are
// absorbed as warnings; the only fatal conversion error is an unusable root.
//
// Precondition: root must exist and be a directory.
// Postcondition: on success the document carries all six sections, every
// entity list ascending-sorted by id, and at least one room.
func (c *Converter) Convert(root string) (*Result, error) {
	layout, err := dump.Detect(root)
	if err != nil {
		return nil, fmt.Errorf("detecting dump layout: %w", err)
	}
	c.logger.Debug("dump layout resolved",
		zap.String("root", root),
		zap.Stringer("textures", layout.Textures.Convention),
		zap.Stringer("sprites", layout.Sprites.Convention),
		zap.Stringer("objects", layout.Objects.Convention),
		zap.Stringer("rooms", layout.Rooms.Convention),
		zap.Stringer("sounds", layout.Sounds.Convention))

	doc := gamedoc.New(filepath.Base(filepath.Clean(root)))
	result := &Result{Document: doc}

	textures, warnings := LoadTextures(layout.Textures)
	doc.Textures = append(doc.Textures, textures...)
	c.record(result, "textures", warnings)
	c.logger.Info("textures loaded",
		zap.Int("count", len(doc.Textures)), zap.Stringer("layout", layout.Textures.Convention))

	sprites, warnings := LoadSprites(layout.Sprites)
	doc.Sprites = append(doc.Sprites, sprites...)
	c.record(result, "sprites", warnings)
	c.logger.Info("sprites loaded",
		zap.Int("count", len(doc.Sprites)), zap.Stringer("layout", layout.Sprites.Convention))

	objects, warnings := LoadObjects(layout.Objects, c.codeLimit)
	doc.Objects = append(doc.Objects, objects...)
	c.record(result, "objects", warnings)
	c.logger.Info("objects loaded",
		zap.Int("count", len(doc.Objects)), zap.Stringer("layout", layout.Objects.Convention))

	rooms, warnings := LoadRooms(layout.Rooms)
	doc.Rooms = append(doc.Rooms, rooms...)
	c.record(result, "rooms", warnings)
	if len(doc.Rooms) == 0 {
		doc.Rooms = append(doc.Rooms, SynthesizeDefaultRoom(len(doc.Objects)))
		result.Synthesized = true
		c.logger.Info("no rooms in dump, synthesized default room",
			zap.Int("object_count", len(doc.Objects)))
	}
	c.logger.Info("rooms loaded",
		zap.Int("count", len(doc.Rooms)), zap.Bool("synthesized", result.Synthesized))

	sounds, warnings := LoadSounds(layout.Sounds)
	doc.Sounds = append(doc.Sounds, sounds...)
	c.record(result, "sounds", warnings)
	c.logger.Info("sounds loaded",
		zap.Int("count", len(doc.Sounds)), zap.Stringer("layout", layout.Sounds.Convention))

	doc.SortEntities()
	c.record(result, "references", doc.CheckReferences())

	return result, nil
}

// record logs each warning and appends it to the run's warning list.
func (c *Converter) record(result *Result, category string, warnings []string) {
	for _, w := range warnings {
		c.logger.Warn("conversion warning",
			zap.String("category", category), zap.String("detail", w))
		result.Warnings = append(result.Warnings, w)
	}
}

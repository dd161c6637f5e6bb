package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cory-johannsen/umtconv/internal/dump"
	"github.com/cory-johannsen/umtconv/internal/gamedoc"
)

// LoadSprites builds one sprite per subdirectory of the sprite category,
// sorted by name. Scalar metadata comes from the per-sprite fact files with
// the documented defaults; animation frames come from a frames/ subdirectory,
// one frame per regular file, the texture reference recovered from the frame
// file name.
//
// Precondition: cat is the detector's sprite layout for the run.
// Postcondition: sprite ids are dense, assigned in directory order; every
// sprite carries a non-nil frames slice.
func LoadSprites(cat dump.CategoryLayout) ([]gamedoc.Sprite, []string) {
	if !cat.Present() {
		return nil, nil
	}
	entries, err := os.ReadDir(cat.Dir)
	if err != nil {
		return nil, []string{fmt.Sprintf("reading sprite directory %s, keeping zero sprites: %v", cat.Dir, err)}
	}
	var sprites []gamedoc.Sprite
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(cat.Dir, e.Name())
		sprites = append(sprites, gamedoc.Sprite{
			ID:                len(sprites),
			Name:              e.Name(),
			Width:             dump.ReadInt(dir, "width", 32),
			Height:            dump.ReadInt(dir, "height", 32),
			XOffset:           dump.ReadInt(dir, "xoffset", 0),
			YOffset:           dump.ReadInt(dir, "yoffset", 0),
			CollisionType:     0,
			Frames:            loadFrames(filepath.Join(dir, "frames")),
			PlaybackSpeed:     15.0,
			PlaybackSpeedType: gamedoc.PlaybackFramesPerGameFrame,
		})
	}
	return sprites, nil
}

// loadFrames reads the frame files of one sprite, sorted by name. The dump
// carries no per-frame metadata, so the texture reference is the numeric
// token embedded in the file name and the duration is fixed.
func loadFrames(dir string) []gamedoc.Frame {
	frames := []gamedoc.Frame{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Sprites without a frames directory are common in partial dumps.
		return frames
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		frames = append(frames, gamedoc.Frame{
			TextureID: dump.NumericToken(e.Name()),
			Duration:  1.0,
		})
	}
	return frames
}

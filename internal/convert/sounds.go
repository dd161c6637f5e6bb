package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cory-johannsen/umtconv/internal/dump"
	"github.com/cory-johannsen/umtconv/internal/gamedoc"
)

// soundExtensions is the audio probe order; the first hit wins.
var soundExtensions = []string{".ogg", ".mp3", ".wav", ".flac"}

// LoadSounds builds one sound per subdirectory of the sound category, sorted
// by name. The file path is the bare name of the first audio file found
// inside the entity directory matching <name><ext> in probe order, or empty
// when none exists.
//
// Precondition: cat is the detector's sound layout for the run.
// Postcondition: sound ids are dense, assigned in directory order.
func LoadSounds(cat dump.CategoryLayout) ([]gamedoc.Sound, []string) {
	if !cat.Present() {
		return nil, nil
	}
	entries, err := os.ReadDir(cat.Dir)
	if err != nil {
		return nil, []string{fmt.Sprintf("reading sound directory %s, keeping zero sounds: %v", cat.Dir, err)}
	}
	var sounds []gamedoc.Sound
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		filePath := ""
		for _, ext := range soundExtensions {
			if _, err := os.Stat(filepath.Join(cat.Dir, name, name+ext)); err == nil {
				filePath = name + ext
				break
			}
		}
		sounds = append(sounds, gamedoc.Sound{
			ID:        len(sounds),
			Name:      name,
			SoundType: gamedoc.SoundEffect,
			FilePath:  filePath,
			Volume:    1.0,
			Pitch:     1.0,
		})
	}
	return sounds, nil
}

package convert

import (
	"fmt"
	"os"

	"github.com/cory-johannsen/umtconv/internal/dump"
)

// LoadTextures returns the bare file names of the texture category, sorted by
// name. A frame's texture reference is a position in this list, so the order
// established here is the order every later reference resolves against.
//
// Precondition: cat is the detector's texture layout for the run.
// Postcondition: returns zero or more names plus warnings for anything
// skipped; an absent category yields an empty result with no warnings.
func LoadTextures(cat dump.CategoryLayout) ([]string, []string) {
	if !cat.Present() {
		return nil, nil
	}
	entries, err := os.ReadDir(cat.Dir)
	if err != nil {
		return nil, []string{fmt.Sprintf("reading texture directory %s, keeping zero textures: %v", cat.Dir, err)}
	}
	textures := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		textures = append(textures, e.Name())
	}
	return textures, nil
}

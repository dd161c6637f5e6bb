// Package dump provides primitives for reading asset-extraction dump trees:
// category layout detection, tolerant scalar metadata files, and
// filename-embedded numeric references.
package dump

import (
	"fmt"
	"os"
	"path/filepath"
)

// Convention identifies how a category stores its entities on disk.
type Convention int

const (
	// Absent means the dump carries no directory for the category.
	Absent Convention = iota
	// EntityDirs means one subdirectory per entity.
	EntityDirs
	// FlatFiles means one regular file per entity.
	FlatFiles
	// FlatCode means flat code files whose names encode entity and event.
	FlatCode
)

// String returns the convention name for logs.
func (c Convention) String() string {
	switch c {
	case EntityDirs:
		return "entity-dirs"
	case FlatFiles:
		return "flat-files"
	case FlatCode:
		return "flat-code"
	default:
		return "absent"
	}
}

// CategoryLayout describes where one category's entities live.
type CategoryLayout struct {
	// Convention is how the resolved directory stores entities.
	Convention Convention
	// Dir is the resolved category directory; empty when Convention is Absent.
	Dir string
}

// Present reports whether the category exists in the dump at all.
func (cl CategoryLayout) Present() bool { return cl.Convention != Absent }

// Layout is the result of probing a dump root for every supported category.
type Layout struct {
	// Root is the dump root directory the layout was detected from.
	Root string

	Textures CategoryLayout
	Sprites  CategoryLayout
	Objects  CategoryLayout
	Rooms    CategoryLayout
	Sounds   CategoryLayout
}

// candidate pairs a directory name with the convention it implies.
type candidate struct {
	name       string
	convention Convention
}

// Probe order is fixed and first-match-wins: the modern layout name is tried
// before its legacy fallback. An absent category is not an error.
var (
	textureCandidates = []candidate{
		{"EmbeddedTextures", FlatFiles},
		{"Textures", FlatFiles},
	}
	spriteCandidates = []candidate{
		{"Sprites", EntityDirs},
	}
	objectCandidates = []candidate{
		{"Objects", EntityDirs},
		{"CodeEntries", FlatCode},
	}
	roomCandidates = []candidate{
		{"Rooms", EntityDirs},
	}
	soundCandidates = []candidate{
		{"Sounds", EntityDirs},
	}
)

// Detect probes a dump root for each category's directory convention.
//
// Precondition: root must be an existing directory; a missing root is the
// single fatal precondition of a conversion run.
// Postcondition: returns a Layout whose category fields are Absent for any
// category the dump does not carry, or a non-nil error for a bad root.
func Detect(root string) (*Layout, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("dump root %s not accessible: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dump root %s is not a directory", root)
	}

	return &Layout{
		Root:     root,
		Textures: probe(root, textureCandidates),
		Sprites:  probe(root, spriteCandidates),
		Objects:  probe(root, objectCandidates),
		Rooms:    probe(root, roomCandidates),
		Sounds:   probe(root, soundCandidates),
	}, nil
}

func probe(root string, candidates []candidate) CategoryLayout {
	for _, c := range candidates {
		dir := filepath.Join(root, c.name)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		return CategoryLayout{Convention: c.convention, Dir: dir}
	}
	return CategoryLayout{Convention: Absent}
}

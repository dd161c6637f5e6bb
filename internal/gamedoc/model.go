// Package gamedoc defines the converted game document: the typed model, its
// JSON field contract, ascending-id ordering, and the document writer.
//
// The JSON tags are the compatibility contract with the downstream asset
// loader and must not be renamed.
package gamedoc

import "sort"

// SchemaVersion is the fixed version string stamped into every document.
const SchemaVersion = "1.0"

// Playback speed kinds for sprite animation.
const (
	// PlaybackFramesPerSecond advances animation by wall-clock time.
	PlaybackFramesPerSecond = 0
	// PlaybackFramesPerGameFrame advances animation per game tick.
	PlaybackFramesPerGameFrame = 1
)

// Sound kinds.
const (
	// SoundEffect is a plain one-shot sound.
	SoundEffect = 0
	// SoundMusic is streamed background music.
	SoundMusic = 1
	// SoundSFX is a positional effect.
	SoundSFX = 2
)

// Game is the document metadata header.
type Game struct {
	// Name is the dump directory's own base name.
	Name string `json:"name"`
	// Version is the fixed schema version string.
	Version string `json:"version"`
}

// Frame is a single step of a sprite animation.
type Frame struct {
	// TextureID is the referenced texture's id, recovered from the frame
	// file's name. Best-effort; not validated against the texture list.
	TextureID int `json:"texture_id"`
	// Duration is the frame's display time in playback units.
	Duration float64 `json:"duration"`
}

// Sprite is a drawable asset with optional animation frames.
type Sprite struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	XOffset       int     `json:"x_offset"`
	YOffset       int     `json:"y_offset"`
	CollisionType int     `json:"collision_type"`
	Frames        []Frame `json:"frames"`
	PlaybackSpeed float64 `json:"playback_speed"`
	// PlaybackSpeedType is one of the Playback* constants.
	PlaybackSpeedType int `json:"playback_speed_type"`
}

// Object is a game object definition with its event code table.
type Object struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// SpriteID references a sprite by id; -1 means no sprite.
	SpriteID int  `json:"sprite_id"`
	Solid    bool `json:"solid"`
	// Events maps event name to opaque source text. Serialized with keys in
	// ascending order, which keeps output deterministic.
	Events       map[string]string `json:"events"`
	CreationCode string            `json:"creation_code"`
}

// Instance is one object placement inside a room.
type Instance struct {
	ID           int    `json:"id"`
	ObjectID     int    `json:"object_id"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
	CreationCode string `json:"creation_code"`
}

// Room is a playable area and its object placements.
type Room struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	// BackgroundColor is an ARGB hex string such as "0xFF000000".
	BackgroundColor string `json:"background_color"`
	// BackgroundIndex references a background asset; -1 means none.
	BackgroundIndex  int        `json:"background_index"`
	ClearBufferColor uint32     `json:"clear_buffer_color"`
	Instances        []Instance `json:"instances"`
}

// Sound is an audio asset reference.
type Sound struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// SoundType is one of the Sound* constants.
	SoundType int `json:"sound_type"`
	// FilePath is the audio file's bare name inside the sound's directory,
	// or empty when no audio file was found.
	FilePath string  `json:"file_path"`
	Volume   float64 `json:"volume"`
	Pitch    float64 `json:"pitch"`
}

// Document is the complete converted game: metadata plus the five category
// lists. Every list is sorted ascending by id before emission.
type Document struct {
	Game     Game     `json:"game"`
	Textures []string `json:"textures"`
	Sprites  []Sprite `json:"sprites"`
	Objects  []Object `json:"objects"`
	Rooms    []Room   `json:"rooms"`
	Sounds   []Sound  `json:"sounds"`
}

// New constructs an empty document for the named game. Category lists start
// empty but non-nil so the serialized form always carries all six keys with
// list values.
func New(name string) *Document {
	return &Document{
		Game:     Game{Name: name, Version: SchemaVersion},
		Textures: []string{},
		Sprites:  []Sprite{},
		Objects:  []Object{},
		Rooms:    []Room{},
		Sounds:   []Sound{},
	}
}

// SortEntities orders every category list ascending by id.
//
// Postcondition: for each category list, ids are non-decreasing.
func (d *Document) SortEntities() {
	sort.Slice(d.Sprites, func(i, j int) bool { return d.Sprites[i].ID < d.Sprites[j].ID })
	sort.Slice(d.Objects, func(i, j int) bool { return d.Objects[i].ID < d.Objects[j].ID })
	sort.Slice(d.Rooms, func(i, j int) bool { return d.Rooms[i].ID < d.Rooms[j].ID })
	sort.Slice(d.Sounds, func(i, j int) bool { return d.Sounds[i].ID < d.Sounds[j].ID })
}

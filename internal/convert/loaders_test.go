package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/umtconv/internal/convert"
	"github.com/cory-johannsen/umtconv/internal/dump"
	"github.com/cory-johannsen/umtconv/internal/gamedoc"
	"github.com/cory-johannsen/umtconv/internal/testutil"
)

func entityDirs(dir string) dump.CategoryLayout {
	return dump.CategoryLayout{Convention: dump.EntityDirs, Dir: dir}
}

func TestLoadTextures_SkipsSubdirectories(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.File("EmbeddedTextures/b.png", "")
	d.File("EmbeddedTextures/a.png", "")
	d.Dir("EmbeddedTextures/not_a_texture")

	textures, warnings := convert.LoadTextures(dump.CategoryLayout{
		Convention: dump.FlatFiles,
		Dir:        d.Dir("EmbeddedTextures"),
	})
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"a.png", "b.png"}, textures)
}

func TestLoadTextures_AbsentCategory(t *testing.T) {
	textures, warnings := convert.LoadTextures(dump.CategoryLayout{})
	assert.Empty(t, textures)
	assert.Empty(t, warnings)
}

func TestLoadSprites_MetadataDefaults(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.Dir("Sprites/spr_bare")

	sprites, warnings := convert.LoadSprites(entityDirs(d.Dir("Sprites")))
	assert.Empty(t, warnings)
	require.Len(t, sprites, 1)

	sprite := sprites[0]
	assert.Equal(t, "spr_bare", sprite.Name)
	assert.Equal(t, 32, sprite.Width)
	assert.Equal(t, 32, sprite.Height)
	assert.Equal(t, 0, sprite.XOffset)
	assert.Equal(t, 0, sprite.YOffset)
	assert.Equal(t, 0, sprite.CollisionType)
	assert.NotNil(t, sprite.Frames)
	assert.Empty(t, sprite.Frames)
	assert.Equal(t, 15.0, sprite.PlaybackSpeed)
	assert.Equal(t, gamedoc.PlaybackFramesPerGameFrame, sprite.PlaybackSpeedType)
}

func TestLoadSprites_GarbageMetadataFallsBackToDefaults(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.File("Sprites/spr_a/width", "not a number")
	d.File("Sprites/spr_a/height", "64")

	sprites, warnings := convert.LoadSprites(entityDirs(d.Dir("Sprites")))
	assert.Empty(t, warnings)
	require.Len(t, sprites, 1)
	assert.Equal(t, 32, sprites[0].Width)
	assert.Equal(t, 64, sprites[0].Height)
}

func TestLoadSprites_FrameTextureTokens(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.File("Sprites/spr_a/frames/frame_12_extra.png", "")
	d.File("Sprites/spr_a/frames/notoken.png", "")

	sprites, _ := convert.LoadSprites(entityDirs(d.Dir("Sprites")))
	require.Len(t, sprites, 1)
	require.Len(t, sprites[0].Frames, 2)

	// ReadDir order: "frame_12_extra.png" sorts before "notoken.png".
	assert.Equal(t, 12, sprites[0].Frames[0].TextureID)
	assert.Equal(t, 0, sprites[0].Frames[1].TextureID)
}

func TestLoadObjects_EventKeyIsFileStem(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.File("Objects/obj_a/events/Create_0.gml", "a")
	d.File("Objects/obj_a/events/Draw", "b")

	objects, warnings := convert.LoadObjects(entityDirs(d.Dir("Objects")), 0)
	assert.Empty(t, warnings)
	require.Len(t, objects, 1)
	assert.Equal(t, map[string]string{"Create_0": "a", "Draw": "b"}, objects[0].Events)
}

func TestLoadObjects_NoEventsDirectoryYieldsEmptyTable(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.Dir("Objects/obj_a")

	objects, warnings := convert.LoadObjects(entityDirs(d.Dir("Objects")), 0)
	assert.Empty(t, warnings)
	require.Len(t, objects, 1)
	assert.NotNil(t, objects[0].Events)
	assert.Empty(t, objects[0].Events)
	assert.Equal(t, -1, objects[0].SpriteID)
	assert.False(t, objects[0].Solid)
}

func TestLoadObjects_FlatStemSplitsAtThirdSegment(t *testing.T) {
	d := testutil.NewDumpTree(t)
	// An underscored object name splits at the third segment: the remainder
	// all lands in the event name.
	d.File("CodeEntries/gml_Object_obj_player_Create_0.gml", "code")

	objects, warnings := convert.LoadObjects(dump.CategoryLayout{
		Convention: dump.FlatCode,
		Dir:        d.Dir("CodeEntries"),
	}, 0)
	assert.Empty(t, warnings)
	require.Len(t, objects, 1)
	assert.Equal(t, "obj", objects[0].Name)
	assert.Equal(t, map[string]string{"player_Create_0": "code"}, objects[0].Events)
}

func TestLoadObjects_AbsentCategory(t *testing.T) {
	objects, warnings := convert.LoadObjects(dump.CategoryLayout{}, 0)
	assert.Empty(t, objects)
	assert.Empty(t, warnings)
}

func TestLoadRooms_SidecarCoercion(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.File("Rooms/room_a/instances.json",
		`[{"x": 3.7, "y": "12", "objectId": 1}, {"x": {}}, {"objectId": 2}]`)

	rooms, warnings := convert.LoadRooms(entityDirs(d.Dir("Rooms")))
	require.Len(t, rooms, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "record 1")

	instances := rooms[0].Instances
	require.Len(t, instances, 2)

	assert.Equal(t, 0, instances[0].ID)
	assert.Equal(t, 3, instances[0].X, "fractional coordinates truncate toward zero")
	assert.Equal(t, 12, instances[0].Y, "decimal strings parse")
	assert.Equal(t, 1, instances[0].ObjectID)

	assert.Equal(t, 1, instances[1].ID, "skipped records consume no id")
	assert.Equal(t, 0, instances[1].X)
	assert.Equal(t, 0, instances[1].Y)
	assert.Equal(t, 2, instances[1].ObjectID)
}

func TestLoadRooms_SidecarNotAnArray(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.File("Rooms/room_a/instances.json", `{"x": 1}`)

	rooms, warnings := convert.LoadRooms(entityDirs(d.Dir("Rooms")))
	require.Len(t, rooms, 1)
	assert.Empty(t, rooms[0].Instances)
	assert.NotNil(t, rooms[0].Instances)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "room_a")
}

func TestLoadRooms_MissingSidecarIsSilent(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.Dir("Rooms/room_a")

	rooms, warnings := convert.LoadRooms(entityDirs(d.Dir("Rooms")))
	assert.Empty(t, warnings)
	require.Len(t, rooms, 1)
	assert.Empty(t, rooms[0].Instances)
}

func TestLoadRooms_Defaults(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.Dir("Rooms/room_bare")
	d.File("Rooms/room_sized/width", "640")
	d.File("Rooms/room_sized/height", "480")

	rooms, _ := convert.LoadRooms(entityDirs(d.Dir("Rooms")))
	require.Len(t, rooms, 2)

	bare := rooms[0]
	assert.Equal(t, "room_bare", bare.Name)
	assert.Equal(t, 1024, bare.Width)
	assert.Equal(t, 768, bare.Height)
	assert.Equal(t, "0xFF000000", bare.BackgroundColor)
	assert.Equal(t, -1, bare.BackgroundIndex)
	assert.Equal(t, uint32(0xFFFFFFFF), bare.ClearBufferColor)

	sized := rooms[1]
	assert.Equal(t, 640, sized.Width)
	assert.Equal(t, 480, sized.Height)
}

func TestLoadSounds_ExtensionProbeOrder(t *testing.T) {
	d := testutil.NewDumpTree(t)
	d.File("Sounds/snd_both/snd_both.mp3", "")
	d.File("Sounds/snd_both/snd_both.ogg", "")
	d.File("Sounds/snd_wav/snd_wav.wav", "")
	d.Dir("Sounds/snd_none")

	sounds, warnings := convert.LoadSounds(entityDirs(d.Dir("Sounds")))
	assert.Empty(t, warnings)
	require.Len(t, sounds, 3)

	assert.Equal(t, "snd_both.ogg", sounds[0].FilePath, "ogg wins over mp3")
	assert.Equal(t, "", sounds[1].FilePath)
	assert.Equal(t, "snd_wav.wav", sounds[2].FilePath)

	for _, sound := range sounds {
		assert.Equal(t, gamedoc.SoundEffect, sound.SoundType)
		assert.Equal(t, 1.0, sound.Volume)
		assert.Equal(t, 1.0, sound.Pitch)
	}
}

func TestSynthesizeDefaultRoom_Grid(t *testing.T) {
	room := convert.SynthesizeDefaultRoom(5)

	assert.Equal(t, 0, room.ID)
	assert.Equal(t, "Basement", room.Name)
	assert.Equal(t, 800, room.Width)
	assert.Equal(t, 600, room.Height)
	assert.Equal(t, "0xFF000000", room.BackgroundColor)
	assert.Equal(t, -1, room.BackgroundIndex)
	assert.Equal(t, uint32(0xFFFFFFFF), room.ClearBufferColor)

	require.Len(t, room.Instances, 6)
	wantX := []int{200, 400, 600, 200, 400, 600}
	wantY := []int{150, 150, 150, 350, 350, 350}
	wantObject := []int{0, 1, 2, 0, 1, 2}
	for i, instance := range room.Instances {
		assert.Equal(t, i, instance.ID)
		assert.Equal(t, wantX[i], instance.X)
		assert.Equal(t, wantY[i], instance.Y)
		assert.Equal(t, wantObject[i], instance.ObjectID)
	}
}

func TestSynthesizeDefaultRoom_ClampsToObjectCount(t *testing.T) {
	tests := []struct {
		name        string
		objectCount int
		wantObjects []int
	}{
		{"no objects bottoms out at zero", 0, []int{0, 0, 0, 0, 0, 0}},
		{"single object", 1, []int{0, 0, 0, 0, 0, 0}},
		{"two objects", 2, []int{0, 1, 1, 0, 1, 1}},
		{"three or more keep the grid", 3, []int{0, 1, 2, 0, 1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			room := convert.SynthesizeDefaultRoom(tc.objectCount)
			require.Len(t, room.Instances, 6)
			for i, instance := range room.Instances {
				assert.Equal(t, tc.wantObjects[i], instance.ObjectID)
			}
		})
	}
}

// Property-based tests

// TestPropertySynthesizedReferencesInRange verifies every synthesized
// instance reference stays inside [0, max(1, objectCount)).
func TestPropertySynthesizedReferencesInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(0, 10).Draw(rt, "count")
		room := convert.SynthesizeDefaultRoom(count)
		upper := count
		if upper < 1 {
			upper = 1
		}
		for _, instance := range room.Instances {
			assert.GreaterOrEqual(rt, instance.ObjectID, 0)
			assert.Less(rt, instance.ObjectID, upper)
		}
	})
}

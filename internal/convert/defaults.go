package convert

import "github.com/cory-johannsen/umtconv/internal/gamedoc"

// defaultInstanceGrid is the fixed 2x3 placement of the synthesized room's
// instances: x, y, and the intended object index at that cell.
var defaultInstanceGrid = [...]struct{ x, y, objectIndex int }{
	{200, 150, 0}, {400, 150, 1}, {600, 150, 2},
	{200, 350, 0}, {400, 350, 1}, {600, 350, 2},
}

// SynthesizeDefaultRoom returns the placeholder room emitted when a dump
// carries no room data, so the document always has at least a start room.
// Each instance's object reference is the grid's intended index clamped into
// [0, objectCount-1]; with no objects at all every instance references object
// 0 rather than a negative id.
func SynthesizeDefaultRoom(objectCount int) gamedoc.Room {
	instances := make([]gamedoc.Instance, 0, len(defaultInstanceGrid))
	for i, cell := range defaultInstanceGrid {
		objectID := cell.objectIndex
		if objectID > objectCount-1 {
			objectID = objectCount - 1
		}
		if objectID < 0 {
			objectID = 0
		}
		instances = append(instances, gamedoc.Instance{
			ID:           i,
			ObjectID:     objectID,
			X:            cell.x,
			Y:            cell.y,
			CreationCode: "",
		})
	}
	return gamedoc.Room{
		ID:               0,
		Name:             "Basement",
		Width:            800,
		Height:           600,
		BackgroundColor:  "0xFF000000",
		BackgroundIndex:  -1,
		ClearBufferColor: 0xFFFFFFFF,
		Instances:        instances,
	}
}

package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cory-johannsen/umtconv/internal/dump"
	"github.com/cory-johannsen/umtconv/internal/gamedoc"
)

// LoadRooms builds one room per subdirectory of the room category, sorted by
// name. Width and height come from the per-room fact files; instances come
// from an instances.json sidecar. Rooms that fail to produce instances still
// load, and a category that produces no rooms at all is the caller's signal
// to synthesize a default.
//
// Precondition: cat is the detector's room layout for the run.
// Postcondition: room ids are dense; every room carries a non-nil instances
// slice.
func LoadRooms(cat dump.CategoryLayout) ([]gamedoc.Room, []string) {
	if !cat.Present() {
		return nil, nil
	}
	entries, err := os.ReadDir(cat.Dir)
	if err != nil {
		return nil, []string{fmt.Sprintf("reading room directory %s, keeping zero rooms: %v", cat.Dir, err)}
	}
	var rooms []gamedoc.Room
	var warnings []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		roomDir := filepath.Join(cat.Dir, e.Name())
		instances, instanceWarnings := loadInstances(filepath.Join(roomDir, "instances.json"), e.Name())
		warnings = append(warnings, instanceWarnings...)
		rooms = append(rooms, gamedoc.Room{
			ID:               len(rooms),
			Name:             e.Name(),
			Width:            dump.ReadInt(roomDir, "width", 1024),
			Height:           dump.ReadInt(roomDir, "height", 768),
			BackgroundColor:  "0xFF000000",
			BackgroundIndex:  -1,
			ClearBufferColor: 0xFFFFFFFF,
			Instances:        instances,
		})
	}
	return rooms, warnings
}

// loadInstances reads a room's instance sidecar: a JSON array of records with
// optional x, y, and objectId fields. A missing sidecar is the common case
// and yields zero instances silently; a sidecar that is not a JSON array
// yields zero instances with a warning; a single malformed record is skipped
// without consuming an id and later records still load.
func loadInstances(path, roomName string) ([]gamedoc.Instance, []string) {
	instances := []gamedoc.Instance{}
	data, err := os.ReadFile(path)
	if err != nil {
		return instances, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return instances, []string{fmt.Sprintf("room %q: %s is not a JSON array, keeping zero instances: %v", roomName, path, err)}
	}
	var warnings []string
	for i, raw := range records {
		instance, err := decodeInstance(raw)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("room %q: instance record %d malformed, skipping: %v", roomName, i, err))
			continue
		}
		instance.ID = len(instances)
		instances = append(instances, instance)
	}
	return instances, warnings
}

func decodeInstance(raw json.RawMessage) (gamedoc.Instance, error) {
	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return gamedoc.Instance{}, fmt.Errorf("not a JSON object: %w", err)
	}
	objectID, err := coerceInt(record, "objectId", 0)
	if err != nil {
		return gamedoc.Instance{}, err
	}
	x, err := coerceInt(record, "x", 0)
	if err != nil {
		return gamedoc.Instance{}, err
	}
	y, err := coerceInt(record, "y", 0)
	if err != nil {
		return gamedoc.Instance{}, err
	}
	return gamedoc.Instance{
		ObjectID:     objectID,
		X:            x,
		Y:            y,
		CreationCode: "",
	}, nil
}

// coerceInt reads key from a decoded record as an integer. JSON numbers are
// truncated toward zero and decimal strings parsed; any other value rejects
// the whole record. A missing key is the default, not an error.
func coerceInt(record map[string]any, key string, def int) (int, error) {
	v, ok := record[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("field %q: %q is not an integer", key, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("field %q: value %v is not an integer", key, v)
	}
}

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cory-johannsen/umtconv/internal/dump"
	"github.com/cory-johannsen/umtconv/internal/gamedoc"
)

const (
	flatObjectPrefix = "gml_Object_"
	flatObjectSuffix = ".gml"
)

// LoadObjects builds the object list using whichever layout convention the
// detector resolved: per-object directories, or flat code-entry files whose
// names encode object and event.
//
// Precondition: cat is the detector's object layout for the run; codeLimit is
// the byte cap for embedded source text, 0 for unlimited.
// Postcondition: object ids are dense; every object carries a non-nil event
// map.
func LoadObjects(cat dump.CategoryLayout, codeLimit int) ([]gamedoc.Object, []string) {
	switch cat.Convention {
	case dump.EntityDirs:
		return loadObjectDirs(cat.Dir, codeLimit)
	case dump.FlatCode:
		return loadObjectFiles(cat.Dir, codeLimit)
	default:
		return nil, nil
	}
}

// loadObjectDirs handles the per-object-subdirectory convention: the object
// name is the directory name, scalar facts come from metadata files, and
// events live one-per-file in an events/ subdirectory keyed by file stem.
func loadObjectDirs(dir string, codeLimit int) ([]gamedoc.Object, []string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []string{fmt.Sprintf("reading object directory %s, keeping zero objects: %v", dir, err)}
	}
	var objects []gamedoc.Object
	var warnings []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		objDir := filepath.Join(dir, e.Name())
		events, eventWarnings := loadEvents(filepath.Join(objDir, "events"), codeLimit)
		warnings = append(warnings, eventWarnings...)
		objects = append(objects, gamedoc.Object{
			ID:           len(objects),
			Name:         e.Name(),
			SpriteID:     dump.ReadInt(objDir, "sprite_index", -1),
			Solid:        dump.ReadBool(objDir, "solid", false),
			Events:       events,
			CreationCode: "",
		})
	}
	return objects, warnings
}

// loadEvents reads one object's event table: one event per regular file, the
// key is the file name less its extension, the value is the file contents.
func loadEvents(dir string, codeLimit int) (map[string]string, []string) {
	events := map[string]string{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Objects without an events directory are common.
		return events, nil
	}
	var warnings []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("event file %s unreadable, skipping: %v", path, err))
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		events[name] = truncateCode(string(data), codeLimit)
	}
	return events, warnings
}

// loadObjectFiles handles the flat code-entry convention: only files named
// gml_Object_<name>_<event>.gml participate. The stem is split on "_" into at
// most four segments; the third is the object name and the fourth, underscores
// preserved, is the event name. Stems yielding fewer than four segments are
// ignored. Ids are assigned only after the full scan, to the recovered object
// names in ascending order, so grouping never depends on file order.
func loadObjectFiles(dir string, codeLimit int) ([]gamedoc.Object, []string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []string{fmt.Sprintf("reading code entry directory %s, keeping zero objects: %v", dir, err)}
	}
	eventsByObject := make(map[string]map[string]string)
	var warnings []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, flatObjectPrefix) || !strings.HasSuffix(name, flatObjectSuffix) {
			continue
		}
		stem := strings.TrimSuffix(name, flatObjectSuffix)
		parts := strings.SplitN(stem, "_", 4)
		if len(parts) < 4 {
			continue
		}
		objectName, eventName := parts[2], parts[3]

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("code entry %s unreadable, skipping: %v", path, err))
			continue
		}
		if eventsByObject[objectName] == nil {
			eventsByObject[objectName] = map[string]string{}
		}
		eventsByObject[objectName][eventName] = truncateCode(string(data), codeLimit)
	}

	names := make([]string, 0, len(eventsByObject))
	for name := range eventsByObject {
		names = append(names, name)
	}
	sort.Strings(names)

	objects := make([]gamedoc.Object, 0, len(names))
	for i, name := range names {
		objects = append(objects, gamedoc.Object{
			ID:           i,
			Name:         name,
			SpriteID:     -1,
			Solid:        false,
			Events:       eventsByObject[name],
			CreationCode: "",
		})
	}
	return objects, warnings
}

// truncateCode caps embedded source text at limit bytes; 0 or less disables
// the cap.
func truncateCode(code string, limit int) string {
	if limit <= 0 || len(code) <= limit {
		return code
	}
	return code[:limit]
}

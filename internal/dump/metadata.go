package dump

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Scalar metadata files hold one textual value each, named after their key
// and living directly inside an entity's directory. Dumps are routinely
// partial, so every reader here degrades to its default instead of failing.

// ReadInt reads the scalar file named key inside entityDir as a decimal
// integer. Missing file, unreadable file, or non-numeric content all yield
// def.
//
// Postcondition: never returns an error; the result is either the parsed
// value or def.
func ReadInt(entityDir, key string, def int) int {
	raw, ok := readScalar(entityDir, key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// ReadBool reads the scalar file named key inside entityDir as a boolean.
// A readable file parses to true exactly when its trimmed content is one of
// "true", "1", or "yes", case-insensitive; any other content parses to
// false. Only a missing or unreadable file yields def.
func ReadBool(entityDir, key string, def bool) bool {
	raw, ok := readScalar(entityDir, key)
	if !ok {
		return def
	}
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// ReadString reads the scalar file named key inside entityDir as trimmed
// text. Missing or unreadable files yield def.
func ReadString(entityDir, key string, def string) string {
	raw, ok := readScalar(entityDir, key)
	if !ok {
		return def
	}
	return raw
}

func readScalar(entityDir, key string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(entityDir, key))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

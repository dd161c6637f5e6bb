package dump

import (
	"regexp"
	"strconv"
)

var digitRun = regexp.MustCompile(`\d+`)

// NumericToken extracts the first maximal run of decimal digits from a file
// name and parses it as an integer. Names carrying no digits (or a run too
// large for int) yield 0.
//
// This is the best-effort fallback used when an entity references another by
// encoded file name rather than a structured field; it can return a wrong
// but in-range value and callers must not treat it as validated.
func NumericToken(name string) int {
	m := digitRun.FindString(name)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

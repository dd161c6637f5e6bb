// Package extractor locates and drives the external asset-extraction tool
// and stages its dump for conversion.
package extractor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// toolExecutable is the extraction tool's executable name as shipped.
const toolExecutable = "UndertaleModTool.exe"

// conventionalDirs are the install locations probed after the PATH lookup.
// The Windows-style entries expand to nothing elsewhere and simply fail the
// probe.
func conventionalDirs() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(os.Getenv("PROGRAMFILES"), "UMT"),
		filepath.Join(os.Getenv("PROGRAMFILES(X86)"), "UMT"),
		filepath.Join(home, "Downloads", "UMT"),
		filepath.FromSlash("C:/Tools/UMT"),
		"UMT",
	}
}

// Locate resolves the extraction tool executable: an explicit path wins, then
// a PATH lookup, then the conventional install locations.
//
// Precondition: explicitPath may be empty.
// Postcondition: returns an existing path, or an error. An explicit path that
// does not exist is an error, never a fallback: a user-specified path that is
// wrong should be fixed, not silently ignored.
func Locate(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("extraction tool not found at %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}

	if path, err := exec.LookPath(toolExecutable); err == nil {
		return path, nil
	}

	for _, dir := range conventionalDirs() {
		candidate := filepath.Join(dir, toolExecutable)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.New("extraction tool not found: pass an explicit tool path or install it on PATH")
}

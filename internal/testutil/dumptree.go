// Package testutil provides test helpers including dump-tree fixture
// construction.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DumpTree assembles a throwaway asset-dump tree for tests.
type DumpTree struct {
	t    *testing.T
	root string
}

// NewDumpTree creates an empty dump root under the test's temporary
// directory.
//
// Precondition: t must be non-nil.
// Postcondition: returns a builder whose root exists and is removed with the
// test.
func NewDumpTree(t *testing.T) *DumpTree {
	t.Helper()
	return &DumpTree{t: t, root: t.TempDir()}
}

// Root returns the dump root path.
func (d *DumpTree) Root() string { return d.root }

// Dir ensures rel (slash-separated) exists as a directory under the root and
// returns its path.
func (d *DumpTree) Dir(rel string) string {
	d.t.Helper()
	path := filepath.Join(d.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(path, 0755); err != nil {
		d.t.Fatalf("creating fixture directory %s: %v", path, err)
	}
	return path
}

// File writes content at rel (slash-separated) under the root, creating
// parent directories, and returns the path.
func (d *DumpTree) File(rel, content string) string {
	d.t.Helper()
	path := filepath.Join(d.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		d.t.Fatalf("creating fixture directory %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		d.t.Fatalf("writing fixture file %s: %v", path, err)
	}
	return path
}

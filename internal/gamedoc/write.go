package gamedoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Encode serializes the document as indented UTF-8 JSON. HTML escaping is
// disabled so embedded source text survives verbatim.
//
// Postcondition: the returned bytes end with a single newline.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

// Write serializes the document and writes it to path, creating any missing
// parent directories.
//
// Precondition: doc must be non-nil.
// Postcondition: path holds the complete document, or a non-nil error is
// returned and no guarantee is made about partial content.
func Write(doc *Document, path string) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing document to %s: %w", path, err)
	}
	return nil
}

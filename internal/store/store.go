// Package store reads and rewrites the case-store JSON document. The file is
// always loaded fully and replaced wholesale; there is no partial update.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"casetender/internal/model"
)

// Load reads and decodes a case store snapshot. A missing or malformed file
// is fatal to the caller; no output is produced from a bad input.
func Load(path string) (*model.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case store: %w", err)
	}

	var st model.Store
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse case store %s: %w", path, err)
	}

	return &st, nil
}

// Save rewrites the store pretty-printed with non-ASCII preserved. The
// document is encoded in memory first so a marshal failure never truncates
// the file.
func Save(path string, st *model.Store) error {
	data, err := MarshalPretty(st)
	if err != nil {
		return fmt.Errorf("encode case store: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write case store: %w", err)
	}
	return nil
}

// MarshalPretty encodes v with two-space indent and HTML escaping disabled,
// so Cyrillic text stays readable in the stored JSON.
func MarshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

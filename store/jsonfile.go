package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// readJSON decodes the file at path into v. A missing file surfaces as
// os.ErrNotExist so callers can fall back to an empty collection.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON persists v as indented JSON. It writes a temp file next to
// the target and renames it into place, so a crash mid-write leaves the
// previous file intact.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tempPath, path)
}

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"koopa/pkg/models"
)

// Encode writes tracks as an indented JSON array.
func Encode(w io.Writer, tracks []models.TrackRecord) error {
	if tracks == nil {
		tracks = []models.TrackRecord{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tracks)
}

// Decode reads a JSON array of track records.
func Decode(r io.Reader) ([]models.TrackRecord, error) {
	var tracks []models.TrackRecord
	if err := json.NewDecoder(r).Decode(&tracks); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if tracks == nil {
		tracks = []models.TrackRecord{}
	}
	return tracks, nil
}

// WriteFile replaces the catalog artifact at path. The document is encoded
// in memory and written to a temp file in the same directory, which is then
// renamed over path, so readers never see a partial catalog.
func WriteFile(path string, tracks []models.TrackRecord) error {
	var buf bytes.Buffer
	if err := Encode(&buf, tracks); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".catalog-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace catalog: %w", err)
	}
	return nil
}

// ReadFile loads the catalog artifact at path.
func ReadFile(path string) ([]models.TrackRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file)
}

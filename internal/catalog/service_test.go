package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"koopa/internal/config"
	"koopa/internal/logging"
	"koopa/pkg/models"

	"github.com/gofrs/flock"
)

type recordingExporter struct {
	buildID string
	tracks  []models.TrackRecord
	err     error
}

func (e *recordingExporter) ReplaceCatalog(_ context.Context, buildID, _ string, tracks []models.TrackRecord) error {
	if e.err != nil {
		return e.err
	}
	e.buildID = buildID
	e.tracks = tracks
	return nil
}

func TestBuilderRun(t *testing.T) {
	output := filepath.Join(t.TempDir(), "data", "video_game_music_canon.json")
	exporter := &recordingExporter{}

	builder := NewBuilder(config.CatalogConfig{
		SourcePath: filepath.Join("testdata", "sample_canon.csv"),
		OutputPath: output,
	}, logging.Discard(), exporter)

	summary, err := builder.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.BuildID == "" || summary.BuildID != exporter.buildID {
		t.Errorf("Expected build ID %q to reach the exporter, got %q", summary.BuildID, exporter.buildID)
	}
	if !summary.Exported || len(exporter.tracks) != 5 {
		t.Errorf("Expected 5 exported tracks, got %d (exported=%v)", len(exporter.tracks), summary.Exported)
	}

	tracks, err := ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(tracks) != 5 || tracks[0].Track != "Ground Theme" {
		t.Errorf("Unexpected artifact contents: %+v", tracks)
	}
	if slices.Contains(summary.EmptyColumns, ColumnTrackName) || slices.Contains(summary.EmptyColumns, ColumnYouTubeViews) {
		t.Errorf("Expected filled columns to be absent from %v", summary.EmptyColumns)
	}

	entries, err := os.ReadDir(filepath.Dir(output))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("Temp file %s left behind", entry.Name())
		}
	}
}

func TestBuilderRunLocked(t *testing.T) {
	output := filepath.Join(t.TempDir(), "canon.json")
	if err := os.WriteFile(output, []byte("[]\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	held := flock.New(LockPath(output))
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock failed: %v (ok=%v)", err, ok)
	}

	exporter := &recordingExporter{}
	builder := NewBuilder(config.CatalogConfig{
		SourcePath: filepath.Join("testdata", "sample_canon.csv"),
		OutputPath: output,
	}, logging.Discard(), exporter)

	if _, err := builder.Run(context.Background()); !errors.Is(err, ErrBuildInProgress) {
		t.Fatalf("Expected ErrBuildInProgress, got %v", err)
	}
	if exporter.tracks != nil {
		t.Error("Exporter must not run while another build holds the lock")
	}
	if data, _ := os.ReadFile(output); string(data) != "[]\n" {
		t.Errorf("Artifact was modified while locked: %s", data)
	}

	if err := held.Unlock(); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if _, err := builder.Run(context.Background()); err != nil {
		t.Errorf("Expected Run to succeed after unlock, got %v", err)
	}
}

func TestBuilderRunKeepsArtifactOnSourceFailure(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "canon.json")
	previous := []byte(`[{"rank":1,"track":"Previous"}]`)
	if err := os.WriteFile(output, previous, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	tests := []struct {
		name   string
		source string
	}{
		{name: "missing source", source: filepath.Join(dir, "missing.xlsx")},
		{name: "unsupported format", source: filepath.Join(dir, "canon.ods")},
	}

	corrupt := filepath.Join(dir, "corrupt.xlsx")
	if err := os.WriteFile(corrupt, []byte("garbage"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	tests = append(tests, struct {
		name   string
		source string
	}{name: "corrupt workbook", source: corrupt})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := &recordingExporter{}
			builder := NewBuilder(config.CatalogConfig{SourcePath: tt.source, OutputPath: output}, logging.Discard(), exporter)

			if _, err := builder.Run(context.Background()); err == nil {
				t.Fatal("Expected Run to fail")
			}

			data, err := os.ReadFile(output)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if string(data) != string(previous) {
				t.Errorf("Previous artifact was modified: %s", data)
			}
			if exporter.tracks != nil {
				t.Error("Exporter must not run when the source cannot be read")
			}
		})
	}
}

func TestBuilderRunExportFailure(t *testing.T) {
	output := filepath.Join(t.TempDir(), "canon.json")
	exportErr := errors.New("disk full")

	builder := NewBuilder(config.CatalogConfig{
		SourcePath: filepath.Join("testdata", "sample_canon.csv"),
		OutputPath: output,
	}, logging.Discard(), &recordingExporter{err: exportErr})

	_, err := builder.Run(context.Background())
	if !errors.Is(err, exportErr) {
		t.Fatalf("Expected export error, got %v", err)
	}
}

func TestBuilderRunCanceled(t *testing.T) {
	output := filepath.Join(t.TempDir(), "canon.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	builder := NewBuilder(config.CatalogConfig{
		SourcePath: filepath.Join("testdata", "sample_canon.csv"),
		OutputPath: output,
	}, logging.Discard(), nil)

	if _, err := builder.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("Expected no artifact after canceled run, stat err = %v", err)
	}
}

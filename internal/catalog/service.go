package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"koopa/internal/config"
	"koopa/internal/sheet"
	"koopa/pkg/models"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrBuildInProgress is returned when another builder holds the artifact lock.
var ErrBuildInProgress = errors.New("another catalog build is in progress")

// Exporter mirrors a freshly built catalog into a secondary store.
type Exporter interface {
	ReplaceCatalog(ctx context.Context, buildID, sourcePath string, tracks []models.TrackRecord) error
}

// Summary reports the outcome of one builder run
type Summary struct {
	BuildID      string        `json:"buildId"`
	SourcePath   string        `json:"sourcePath"`
	OutputPath   string        `json:"outputPath"`
	Stats        Stats         `json:"stats"`
	EmptyColumns []string      `json:"emptyColumns,omitempty"`
	Exported     bool          `json:"exported"`
	Duration     time.Duration `json:"duration"`
}

// Builder runs the spreadsheet to catalog conversion
type Builder struct {
	config   config.CatalogConfig
	logger   *logrus.Logger
	exporter Exporter
}

// NewBuilder creates a builder. exporter may be nil.
func NewBuilder(cfg config.CatalogConfig, logger *logrus.Logger, exporter Exporter) *Builder {
	return &Builder{
		config:   cfg,
		logger:   logger,
		exporter: exporter,
	}
}

// Run reads the source sheet, builds the catalog and replaces the artifact.
// Nothing is written unless the whole sheet was read and parsed, so a failed
// run leaves the previous artifact in place.
func (b *Builder) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	summary := &Summary{
		BuildID:    uuid.NewString(),
		SourcePath: b.config.SourcePath,
		OutputPath: b.config.OutputPath,
	}
	log := b.logger.WithField("build_id", summary.BuildID)

	log.WithField("source_path", b.config.SourcePath).Info("Reading source spreadsheet")
	rows, err := sheet.ReadFile(b.config.SourcePath, b.config.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read source spreadsheet: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracks, stats := Build(rows)
	summary.Stats = stats
	if len(rows) > 0 {
		summary.EmptyColumns = EmptyColumns(rows)
	}
	if len(summary.EmptyColumns) > 0 {
		log.WithField("columns", summary.EmptyColumns).Warn("Source columns are empty in every row")
	}
	if stats.CoercedCells > 0 {
		log.WithField("coerced_cells", stats.CoercedCells).Debug("Defaulted malformed numeric cells")
	}
	if len(tracks) == 0 {
		log.Warn("Source spreadsheet has no data rows; writing an empty catalog")
	}

	unlock, err := lockArtifact(b.config.OutputPath)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := WriteFile(b.config.OutputPath, tracks); err != nil {
		return nil, fmt.Errorf("failed to write catalog: %w", err)
	}

	if b.exporter != nil {
		if err := b.exporter.ReplaceCatalog(ctx, summary.BuildID, b.config.SourcePath, tracks); err != nil {
			return nil, fmt.Errorf("failed to export catalog: %w", err)
		}
		summary.Exported = true
	}

	summary.Duration = time.Since(start)
	log.WithFields(logrus.Fields{
		"output_path":   b.config.OutputPath,
		"tracks":        len(tracks),
		"cleaned_names": stats.CleanedNames,
		"artwork_hits":  stats.ArtworkHits,
		"coerced_cells": stats.CoercedCells,
		"exported":      summary.Exported,
		"duration":      summary.Duration.Round(time.Millisecond),
	}).Info("Catalog built")

	return summary, nil
}

// LockPath is the lock file guarding the artifact at output.
func LockPath(output string) string {
	return filepath.Join(filepath.Dir(output), "."+filepath.Base(output)+".lock")
}

// lockArtifact takes the artifact lock for the write and export steps.
func lockArtifact(output string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	lock := flock.New(LockPath(output))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire build lock: %w", err)
	}
	if !ok {
		return nil, ErrBuildInProgress
	}
	return func() { _ = lock.Unlock() }, nil
}

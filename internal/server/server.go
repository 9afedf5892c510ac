package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"koopa/internal/cache"
	"koopa/internal/config"
	"koopa/internal/database"
	"koopa/internal/reader"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// loadedCatalog is one immutable generation of the served catalog.
type loadedCatalog struct {
	snapshot reader.Snapshot
	loadedAt time.Time
}

// CatalogServer serves the catalog site: the ranked table page, the static
// catalog artifact and a small JSON API over the loaded catalog.
type CatalogServer struct {
	config  *config.Config
	logger  *logrus.Logger
	db      *database.Database
	pages   *cache.PageCache
	watcher *fsnotify.Watcher

	// loadMu serializes LoadCatalog.
	loadMu sync.Mutex

	mu      sync.RWMutex
	current *loadedCatalog
}

// NewCatalogServer creates a server. db may be nil when the dashboard export
// is disabled.
func NewCatalogServer(cfg *config.Config, logger *logrus.Logger, db *database.Database) *CatalogServer {
	return &CatalogServer{
		config:  cfg,
		logger:  logger,
		db:      db,
		pages:   cache.NewPageCache(),
		current: &loadedCatalog{snapshot: reader.Snapshot{State: reader.StateLoading}},
	}
}

// LoadCatalog reads the artifact from disk with a fresh reader and swaps it
// in as the served catalog. Concurrent calls run one at a time.
func (cs *CatalogServer) LoadCatalog(ctx context.Context) reader.Snapshot {
	cs.loadMu.Lock()
	defer cs.loadMu.Unlock()

	r := reader.New(reader.FileSource{Path: cs.config.Catalog.OutputPath})
	snapshot := r.Load(ctx)

	cs.mu.Lock()
	cs.current = &loadedCatalog{snapshot: snapshot, loadedAt: time.Now()}
	cs.mu.Unlock()
	cs.pages.Clear()

	entry := cs.logger.WithFields(logrus.Fields{
		"catalog_path": cs.config.Catalog.OutputPath,
		"state":        snapshot.State.String(),
		"tracks":       len(snapshot.Tracks),
	})
	if snapshot.Err != nil {
		entry.WithError(snapshot.Err).Warn("Catalog unavailable")
	} else {
		entry.Info("Catalog loaded")
	}
	return snapshot
}

func (cs *CatalogServer) catalog() *loadedCatalog {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.current
}

// Handler returns the HTTP handler with all routes and middleware applied.
func (cs *CatalogServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", cs.handleHome)
	mux.HandleFunc("GET "+reader.ArtifactPath, cs.handleArtifact)
	mux.HandleFunc("GET /api/tracks", cs.handleGetTracks)
	mux.HandleFunc("GET /health", cs.handleHealthCheck)
	mux.Handle("GET /", http.FileServer(http.Dir(cs.config.Server.PublicDir)))

	var handler http.Handler = mux
	handler = cs.corsMiddleware(handler)
	handler = cs.requestLoggingMiddleware(handler)
	handler = cs.panicRecoveryMiddleware(handler)
	return handler
}

// Run serves until ctx is canceled, then shuts down gracefully. The catalog
// is loaded in the background, so early requests see the loading state.
func (cs *CatalogServer) Run(ctx context.Context) error {
	defer cs.pages.Stop()

	if cs.config.Server.WatchCatalog {
		if err := cs.startCatalogWatcher(ctx); err != nil {
			cs.logger.WithError(err).Warn("Could not start catalog watcher")
		} else {
			defer cs.stopCatalogWatcher()
		}
	}

	go cs.LoadCatalog(ctx)

	srv := &http.Server{
		Addr:        cs.config.GetAddress(),
		Handler:     cs.Handler(),
		ReadTimeout: time.Duration(cs.config.Server.ReadTimeout) * time.Second,
	}

	cs.logger.WithFields(logrus.Fields{
		"address":    fmt.Sprintf("http://%s", cs.config.GetAddress()),
		"public_dir": cs.config.Server.PublicDir,
	}).Info("Koopa server starting")

	errs := make(chan error, 1)
	go func() { errs <- srv.ListenAndServe() }()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		cs.logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		cs.logger.Info("Server shutdown complete")
		return nil
	}
}

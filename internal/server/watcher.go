package server

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// startCatalogWatcher watches the artifact's directory and reloads the
// catalog whenever the artifact is replaced.
func (cs *CatalogServer) startCatalogWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(cs.config.Catalog.OutputPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}
	cs.watcher = watcher

	go cs.watchCatalog(ctx)

	cs.logger.WithField("directory", dir).Info("Catalog watcher started")
	return nil
}

// watchCatalog selects on watcher channels and dispatches events.
func (cs *CatalogServer) watchCatalog(ctx context.Context) {
	for {
		select {
		case event, ok := <-cs.watcher.Events:
			if !ok {
				return
			}
			if cs.isCatalogEvent(event) {
				cs.logger.WithField("event", event.Op.String()).Info("Catalog artifact changed")
				cs.LoadCatalog(ctx)
			}

		case err, ok := <-cs.watcher.Errors:
			if !ok {
				return
			}
			cs.logger.WithError(err).Error("Catalog watcher error")

		case <-ctx.Done():
			return
		}
	}
}

// isCatalogEvent ignores temp files and events for other files. The builder
// renames a temp file over the artifact, which arrives as a Create.
func (cs *CatalogServer) isCatalogEvent(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(cs.config.Catalog.OutputPath) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}

// stopCatalogWatcher closes the watcher (idempotent).
func (cs *CatalogServer) stopCatalogWatcher() {
	if cs.watcher != nil {
		cs.watcher.Close()
	}
}

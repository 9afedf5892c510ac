package server

import (
	"net/http"
	"time"

	"koopa/internal/database"
)

// HealthStatus represents operational status for the /health endpoint.
type HealthStatus struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Catalog   string          `json:"catalog"`
	Tracks    int             `json:"trackCount"`
	LoadedAt  *time.Time      `json:"loadedAt,omitempty"`
	Export    string          `json:"export"`
	LastBuild *database.Build `json:"lastBuild,omitempty"`
	Exported  int             `json:"exportedTracks"`
	Details   map[string]any  `json:"details,omitempty"`
}

// handleHealthCheck reports the catalog state and, when the dashboard export
// is configured, the last recorded build.
func (cs *CatalogServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	current := cs.catalog()

	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Catalog:   current.snapshot.State.String(),
		Tracks:    len(current.snapshot.Tracks),
		Export:    "disabled",
		Details:   make(map[string]any),
	}
	if !current.loadedAt.IsZero() {
		loadedAt := current.loadedAt
		health.LoadedAt = &loadedAt
	}
	if current.snapshot.Err != nil {
		health.Status = "degraded"
		health.Details["catalog_error"] = current.snapshot.Err.Error()
	}

	if cs.db != nil {
		cs.checkExportHealth(r, health)
	}

	w.Header().Set("Content-Type", "application/json")
	if health.Status == "unhealthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	cs.respondJSON(w, health)
}

// checkExportHealth fills in dashboard export details from the database.
func (cs *CatalogServer) checkExportHealth(r *http.Request, health *HealthStatus) {
	health.Export = "ok"

	if err := cs.db.Ping(r.Context()); err != nil {
		health.Status = "unhealthy"
		health.Export = "error"
		health.Details["export_error"] = err.Error()
		return
	}

	build, err := cs.db.LatestBuild()
	if err != nil {
		health.Details["last_build_error"] = err.Error()
	} else {
		health.LastBuild = build
	}

	count, err := cs.db.CountTracks()
	if err != nil {
		health.Details["export_count_error"] = err.Error()
	} else {
		health.Exported = count
	}
}

package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"koopa/internal/reader"
	"koopa/pkg/models"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html.tmpl").Funcs(template.FuncMap{
	"formatViews": reader.FormatViews,
}).ParseFS(templateFS, "templates/index.html.tmpl"))

type pageData struct {
	State  string
	Tracks []models.TrackRecord
}

// TracksResponse is the body of GET /api/tracks.
type TracksResponse struct {
	State  string               `json:"state"`
	Total  int                  `json:"total"`
	Count  int                  `json:"count"`
	Tracks []models.TrackRecord `json:"tracks"`
}

// handleHome renders the ranked table in whichever state the catalog is in.
func (cs *CatalogServer) handleHome(w http.ResponseWriter, r *http.Request) {
	current := cs.catalog()
	state := current.snapshot.State

	// Loading pages are not cached.
	key := fmt.Sprintf("index:%d", current.loadedAt.UnixNano())
	if state != reader.StateLoading {
		if page, ok := cs.pages.GetPage(key); ok {
			cs.writePage(w, page)
			return
		}
	}

	var buf bytes.Buffer
	data := pageData{State: state.String(), Tracks: current.snapshot.Tracks}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		cs.respondWithError(w, r, http.StatusInternalServerError, "Failed to render page", err)
		return
	}

	page := buf.Bytes()
	if state != reader.StateLoading {
		cs.pages.SetPage(key, page)
	}
	cs.writePage(w, page)
}

func (cs *CatalogServer) writePage(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleArtifact serves the catalog file exactly as the builder wrote it.
func (cs *CatalogServer) handleArtifact(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, cs.config.Catalog.OutputPath)
}

// handleGetTracks returns loaded tracks, optionally filtered by a case
// insensitive search over track, game and artist.
func (cs *CatalogServer) handleGetTracks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var validationErrors []ValidationError
	search := query.Get("search")
	if verr := validateSearchQuery(search); verr != nil {
		validationErrors = append(validationErrors, *verr)
	}
	limit, verr := validateLimit(query.Get("limit"))
	if verr != nil {
		validationErrors = append(validationErrors, *verr)
	}
	if len(validationErrors) > 0 {
		cs.respondWithValidationError(w, r, validationErrors)
		return
	}

	current := cs.catalog()
	matches := filterTracks(current.snapshot.Tracks, sanitizeInput(search))
	total := len(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	cs.respondJSON(w, TracksResponse{
		State:  current.snapshot.State.String(),
		Total:  total,
		Count:  len(matches),
		Tracks: matches,
	})
}

func filterTracks(tracks []models.TrackRecord, search string) []models.TrackRecord {
	matches := make([]models.TrackRecord, 0, len(tracks))
	if search == "" {
		return append(matches, tracks...)
	}

	needle := strings.ToLower(search)
	for _, t := range tracks {
		if strings.Contains(strings.ToLower(t.Track), needle) ||
			strings.Contains(strings.ToLower(t.Game), needle) ||
			strings.Contains(strings.ToLower(t.Artist), needle) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Package reader loads the published catalog artifact for presentation.
//
// A Reader fetches the artifact exactly once and exposes one of three
// states: loading, loaded with data, or empty (no data or a failed fetch).
// There are no retries and no background refresh; callers that want a newer
// catalog create a new Reader.
package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"koopa/internal/catalog"
	"koopa/internal/lookup"
	"koopa/pkg/models"
)

// ArtifactPath is the fixed path the site serves the catalog from.
const ArtifactPath = "/data/video_game_music_canon.json"

// State is the load state of a Reader
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateEmpty:
		return "empty"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Source fetches the raw catalog document.
type Source interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads the catalog from a local path.
type FileSource struct {
	Path string
}

// Fetch opens the catalog file.
func (s FileSource) Fetch(_ context.Context) (io.ReadCloser, error) {
	return os.Open(s.Path)
}

// StatusError is returned by HTTPSource for non-2xx responses.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// HTTPSource fetches the catalog with a GET request.
type HTTPSource struct {
	Client *http.Client
	URL    string
}

// Fetch requests the catalog and returns the response body.
func (s HTTPSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}

// Snapshot is an immutable view of a Reader's state.
type Snapshot struct {
	State  State
	Tracks []models.TrackRecord
	Err    error
}

// Reader holds the catalog loaded from a Source.
type Reader struct {
	source Source

	once     sync.Once
	mu       sync.RWMutex
	snapshot Snapshot
}

// New creates a Reader in the loading state.
func New(source Source) *Reader {
	return &Reader{
		source:   source,
		snapshot: Snapshot{State: StateLoading},
	}
}

// Load fetches the catalog on the first call and returns the resulting
// snapshot. Later calls return the same snapshot without fetching again.
// Load never returns a fetch or parse failure as an error; it is recorded in
// Snapshot.Err with the state set to StateEmpty.
func (r *Reader) Load(ctx context.Context) Snapshot {
	r.once.Do(func() {
		snapshot := r.fetch(ctx)
		r.mu.Lock()
		r.snapshot = snapshot
		r.mu.Unlock()
	})
	return r.Snapshot()
}

// Snapshot returns the current state without fetching.
func (r *Reader) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *Reader) fetch(ctx context.Context) (snapshot Snapshot) {
	defer func() {
		if p := recover(); p != nil {
			snapshot = Snapshot{State: StateEmpty, Tracks: []models.TrackRecord{}, Err: fmt.Errorf("catalog load panicked: %v", p)}
		}
	}()

	body, err := r.source.Fetch(ctx)
	if err != nil {
		return emptySnapshot(fmt.Errorf("failed to fetch catalog: %w", err))
	}
	defer body.Close()

	tracks, err := catalog.Decode(body)
	if err != nil {
		return emptySnapshot(err)
	}
	if len(tracks) == 0 {
		return emptySnapshot(nil)
	}

	for i := range tracks {
		tracks[i].Track = lookup.CleanTrackName(tracks[i].Track)
	}
	return Snapshot{State: StateLoaded, Tracks: tracks}
}

func emptySnapshot(err error) Snapshot {
	return Snapshot{State: StateEmpty, Tracks: []models.TrackRecord{}, Err: err}
}

// IsStatus reports whether err came from a non-2xx response with the given
// status code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

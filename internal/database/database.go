package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"koopa/pkg/models"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// Build describes one builder run recorded in the export database
type Build struct {
	ID         string    `json:"id"`
	SourcePath string    `json:"sourcePath"`
	TrackCount int       `json:"trackCount"`
	BuiltAt    time.Time `json:"builtAt"`
}

// Database wraps a *sql.DB holding the dashboard export of the catalog. It
// is safe for concurrent use because the underlying *sql.DB is
// concurrency-safe.
type Database struct {
	conn   *sql.DB
	logger *logrus.Logger

	insertTrackStmt *sql.Stmt
	insertBuildStmt *sql.Stmt
}

// NewDatabase opens (or creates) a SQLite database at the provided path and
// ensures all required tables exist. Caller should Close() it when finished.
func NewDatabase(dbPath string, logger *logrus.Logger) (*Database, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?cache=shared&mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works better with few connections
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(15 * time.Minute)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			logger.WithError(err).WithField("pragma", pragma).Warn("Failed to set pragma")
		}
	}

	db := &Database{
		conn:   conn,
		logger: logger,
	}

	if err := db.createTables(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	if err := db.prepareStatements(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	logger.WithField("db_path", dbPath).Debug("Export database initialized")
	return db, nil
}

// createTables is idempotent and safe to call multiple times.
func (db *Database) createTables() error {
	buildsTable := `
	CREATE TABLE IF NOT EXISTS builds (
		id TEXT PRIMARY KEY,
		source_path TEXT NOT NULL,
		track_count INTEGER NOT NULL,
		built_at DATETIME NOT NULL
	);`

	tracksTable := `
	CREATE TABLE IF NOT EXISTS tracks (
		rank INTEGER PRIMARY KEY,
		track TEXT NOT NULL,
		game TEXT NOT NULL,
		artist TEXT NOT NULL,
		spotify INTEGER NOT NULL DEFAULT 0,
		youtube INTEGER NOT NULL DEFAULT 0,
		ranking REAL NOT NULL DEFAULT 0,
		spotify_release INTEGER,
		genres TEXT NOT NULL,
		type TEXT NOT NULL,
		rating REAL NOT NULL DEFAULT 0,
		metacritic INTEGER NOT NULL DEFAULT 0,
		platforms TEXT NOT NULL,
		developer TEXT NOT NULL,
		publisher TEXT NOT NULL,
		source TEXT NOT NULL,
		spotify_link TEXT,
		youtube_link TEXT,
		spotify_artwork TEXT,
		game_release INTEGER,
		build_id TEXT NOT NULL REFERENCES builds(id)
	);`

	indices := []string{
		"CREATE INDEX IF NOT EXISTS idx_tracks_game ON tracks(game);",
		"CREATE INDEX IF NOT EXISTS idx_tracks_type ON tracks(type);",
		"CREATE INDEX IF NOT EXISTS idx_builds_built_at ON builds(built_at);",
	}

	for _, table := range []string{buildsTable, tracksTable} {
		if _, err := db.conn.Exec(table); err != nil {
			return err
		}
	}
	for _, index := range indices {
		if _, err := db.conn.Exec(index); err != nil {
			return err
		}
	}
	return nil
}

func (db *Database) prepareStatements() error {
	var err error

	db.insertTrackStmt, err = db.conn.Prepare(`
		INSERT INTO tracks (rank, track, game, artist, spotify, youtube, ranking, spotify_release,
			genres, type, rating, metacritic, platforms, developer, publisher, source,
			spotify_link, youtube_link, spotify_artwork, game_release, build_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert track statement: %w", err)
	}

	db.insertBuildStmt, err = db.conn.Prepare(`
		INSERT INTO builds (id, source_path, track_count, built_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert build statement: %w", err)
	}

	return nil
}

// ReplaceCatalog swaps the exported catalog for tracks in a single
// transaction and records the build. On error nothing changes.
func (db *Database) ReplaceCatalog(ctx context.Context, buildID, sourcePath string, tracks []models.TrackRecord) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.StmtContext(ctx, db.insertBuildStmt).ExecContext(ctx,
		buildID, sourcePath, len(tracks), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record build: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM tracks"); err != nil {
		return fmt.Errorf("failed to clear tracks: %w", err)
	}

	insert := tx.StmtContext(ctx, db.insertTrackStmt)
	for _, t := range tracks {
		_, err := insert.ExecContext(ctx,
			t.Rank, t.Track, t.Game, t.Artist, t.Spotify, int64(t.YouTube), t.Ranking,
			nullInt(int(t.SpotifyRelease)),
			t.Genres, t.Type, t.Rating, t.Metacritic, t.Platforms, t.Developer, t.Publisher, t.Source,
			nullString(t.SpotifyLink), nullString(t.YouTubeLink), nullString(t.SpotifyArtwork),
			nullIntPtr(t.GameRelease), buildID)
		if err != nil {
			db.logger.WithError(err).WithField("rank", t.Rank).Error("Failed to export track")
			return fmt.Errorf("failed to insert track %d: %w", t.Rank, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}
	return nil
}

// GetAllTracks returns the exported catalog ordered by rank.
func (db *Database) GetAllTracks() ([]models.TrackRecord, error) {
	rows, err := db.conn.Query(`
		SELECT rank, track, game, artist, spotify, youtube, ranking, spotify_release,
			genres, type, rating, metacritic, platforms, developer, publisher, source,
			spotify_link, youtube_link, spotify_artwork, game_release
		FROM tracks
		ORDER BY rank`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracks := []models.TrackRecord{}
	for rows.Next() {
		var (
			t                                     models.TrackRecord
			spotifyRelease, gameRelease           sql.NullInt64
			spotifyLink, youtubeLink, artworkPath sql.NullString
			views                                 int64
		)
		err := rows.Scan(&t.Rank, &t.Track, &t.Game, &t.Artist, &t.Spotify, &views, &t.Ranking,
			&spotifyRelease, &t.Genres, &t.Type, &t.Rating, &t.Metacritic, &t.Platforms,
			&t.Developer, &t.Publisher, &t.Source, &spotifyLink, &youtubeLink, &artworkPath, &gameRelease)
		if err != nil {
			return nil, err
		}

		t.YouTube = models.ViewCount(views)
		t.SpotifyRelease = models.Year(spotifyRelease.Int64)
		t.SpotifyLink = spotifyLink.String
		t.YouTubeLink = youtubeLink.String
		t.SpotifyArtwork = artworkPath.String
		if gameRelease.Valid {
			year := int(gameRelease.Int64)
			t.GameRelease = &year
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// CountTracks returns the number of exported tracks.
func (db *Database) CountTracks() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM tracks").Scan(&count)
	return count, err
}

// LatestBuild returns the most recent recorded build, or nil when the
// database has never been exported to.
func (db *Database) LatestBuild() (*Build, error) {
	var b Build
	err := db.conn.QueryRow(`
		SELECT id, source_path, track_count, built_at
		FROM builds
		ORDER BY built_at DESC
		LIMIT 1`).Scan(&b.ID, &b.SourcePath, &b.TrackCount, &b.BuiltAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Ping checks database connectivity.
func (db *Database) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close releases prepared statements and the connection pool.
func (db *Database) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertTrackStmt, db.insertBuildStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return db.conn.Close()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}

func nullIntPtr(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

package database

import (
	"context"
	"path/filepath"
	"testing"

	"koopa/internal/logging"
	"koopa/pkg/models"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "koopa.db")

	db, err := NewDatabase(dbPath, logging.Discard())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleTracks() []models.TrackRecord {
	release := 1985
	return []models.TrackRecord{
		{
			Rank: 1, Track: "Ground Theme", Game: "Super Mario Bros.", Artist: "Koji Kondo",
			Spotify: 62, YouTube: 48000000, Ranking: 91.5, SpotifyRelease: 2016,
			Type: "Original", Rating: 4.4, Metacritic: 0,
			SpotifyArtwork: "/images/ground-theme.png", GameRelease: &release,
			SpotifyLink: "https://open.spotify.com/track/1",
		},
		{Rank: 2, Track: "Tetris Theme", Game: "Tetris", Spotify: 55},
	}
}

func TestReplaceCatalog(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	if err := db.ReplaceCatalog(ctx, "build-1", "canon.xlsx", sampleTracks()); err != nil {
		t.Fatalf("ReplaceCatalog failed: %v", err)
	}

	t.Run("RoundTrip", func(t *testing.T) {
		tracks, err := db.GetAllTracks()
		if err != nil {
			t.Fatalf("GetAllTracks failed: %v", err)
		}
		if len(tracks) != 2 {
			t.Fatalf("Expected 2 tracks, got %d", len(tracks))
		}

		first := tracks[0]
		if first.Track != "Ground Theme" || first.YouTube != 48000000 || first.Ranking != 91.5 {
			t.Errorf("Unexpected first track: %+v", first)
		}
		if first.SpotifyArtwork != "/images/ground-theme.png" {
			t.Errorf("Expected artwork to survive export, got %q", first.SpotifyArtwork)
		}
		if first.GameRelease == nil || *first.GameRelease != 1985 {
			t.Errorf("Expected game release 1985, got %v", first.GameRelease)
		}
		if first.SpotifyRelease != 2016 {
			t.Errorf("Expected spotify release 2016, got %d", first.SpotifyRelease)
		}

		second := tracks[1]
		if second.HasArtwork() || second.GameRelease != nil || second.SpotifyRelease != 0 {
			t.Errorf("Expected optional fields absent on second track: %+v", second)
		}
	})

	t.Run("ReplaceIsWhole", func(t *testing.T) {
		replacement := []models.TrackRecord{{Rank: 1, Track: "Sweden", Game: "Minecraft"}}
		if err := db.ReplaceCatalog(ctx, "build-2", "canon.xlsx", replacement); err != nil {
			t.Fatalf("ReplaceCatalog failed: %v", err)
		}

		count, err := db.CountTracks()
		if err != nil {
			t.Fatalf("CountTracks failed: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected previous export to be fully replaced, got %d tracks", count)
		}

		build, err := db.LatestBuild()
		if err != nil {
			t.Fatalf("LatestBuild failed: %v", err)
		}
		if build == nil || build.ID != "build-2" || build.TrackCount != 1 {
			t.Errorf("Unexpected latest build: %+v", build)
		}
	})

	t.Run("FailedReplaceKeepsPrevious", func(t *testing.T) {
		duplicate := []models.TrackRecord{{Rank: 1, Track: "A"}, {Rank: 1, Track: "B"}}
		if err := db.ReplaceCatalog(ctx, "build-3", "canon.xlsx", duplicate); err == nil {
			t.Fatal("Expected error for duplicate rank")
		}

		tracks, err := db.GetAllTracks()
		if err != nil {
			t.Fatalf("GetAllTracks failed: %v", err)
		}
		if len(tracks) != 1 || tracks[0].Track != "Sweden" {
			t.Errorf("Expected rollback to keep previous export, got %+v", tracks)
		}

		build, err := db.LatestBuild()
		if err != nil {
			t.Fatalf("LatestBuild failed: %v", err)
		}
		if build.ID != "build-2" {
			t.Errorf("Expected failed build to be rolled back, latest is %s", build.ID)
		}
	})
}

func TestLatestBuildEmpty(t *testing.T) {
	db := newTestDatabase(t)

	build, err := db.LatestBuild()
	if err != nil {
		t.Fatalf("LatestBuild failed: %v", err)
	}
	if build != nil {
		t.Errorf("Expected no build, got %+v", build)
	}

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

package cache

import (
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.Stop()

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("page", "rendered")
	if v, ok := c.Get("page"); !ok || v != "rendered" {
		t.Errorf("Expected cached value, got %v (%v)", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Expected miss for unknown key")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("page"); ok {
		t.Error("Expected expired entry to miss")
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 2 || stats.Size != 1 {
		t.Errorf("Unexpected stats before sweep: %+v", stats)
	}

	c.removeExpired()
	if c.Stats().Size != 0 {
		t.Error("Expected sweep to remove expired entry")
	}

	c.Set("a", 1)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Expected deleted entry to miss")
	}

	c.Set("b", 2)
	c.Clear()
	if stats := c.Stats(); stats.Size != 0 || stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("Expected Clear to reset cache, got %+v", stats)
	}

	c.Stop()
	c.Stop()
}

func TestPageCache(t *testing.T) {
	pc := NewPageCache()
	defer pc.Stop()

	pc.SetPage("index", []byte("<html></html>"))
	page, ok := pc.GetPage("index")
	if !ok || string(page) != "<html></html>" {
		t.Errorf("Expected cached page, got %q (%v)", page, ok)
	}

	pc.Set("wrong-type", 42)
	if _, ok := pc.GetPage("wrong-type"); ok {
		t.Error("Expected non-page value to be rejected")
	}
}

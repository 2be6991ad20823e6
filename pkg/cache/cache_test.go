package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get before Set should miss")
	}

	// Set then Get
	payload := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}
	if err := c.Set(ctx, "artifact:abc", payload, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get after Set should hit")
	}
	if string(got) != string(payload) {
		t.Errorf("Get returned %v, want %v", got, payload)
	}

	// Delete then miss
	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:abc"); hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting an absent key is not an error
	if err := c.Delete(ctx, "artifact:absent"); err != nil {
		t.Errorf("Delete of absent key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Corrupt the entry file on disk.
	fc := c.(*FileCache)
	if err := os.WriteFile(fc.path("key"), []byte("not json"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("corrupt entry: Get = hit %v, err %v; want miss, nil", hit, err)
	}
}

func TestFileCacheShardsKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "artifact:abc", []byte("v"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) != 1 || !entries[0].IsDir() || len(entries[0].Name()) != 2 {
		t.Errorf("expected one two-char shard directory, got %v", entries)
	}
	sub, err := os.ReadDir(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(sub) != 1 || filepath.Ext(sub[0].Name()) != ".json" {
		t.Errorf("expected one .json entry file, got %v", sub)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	spec := []byte(`{"canvas":{"width":14}}`)

	// Same inputs produce the same key
	k1 := k.ArtifactKey(spec, ArtifactKeyOpts{Format: "png", DPI: 300})
	k2 := k.ArtifactKey(spec, ArtifactKeyOpts{Format: "png", DPI: 300})
	if k1 != k2 {
		t.Error("ArtifactKey should be deterministic")
	}

	// Different options produce different keys
	k3 := k.ArtifactKey(spec, ArtifactKeyOpts{Format: "svg", DPI: 300})
	if k1 == k3 {
		t.Error("Different formats should produce different keys")
	}
	k4 := k.ArtifactKey(spec, ArtifactKeyOpts{Format: "png", DPI: 150})
	if k1 == k4 {
		t.Error("Different DPI should produce different keys")
	}

	// Different specs produce different keys
	k5 := k.ArtifactKey([]byte(`{"canvas":{"width":16}}`), ArtifactKeyOpts{Format: "png", DPI: 300})
	if k1 == k5 {
		t.Error("Different specs should produce different keys")
	}

	// Keys carry the artifact prefix
	if k1[:9] != "artifact:" {
		t.Errorf("ArtifactKey should start with artifact:, got %s", k1)
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "v1:")
	spec := []byte(`{}`)

	key := scoped.ArtifactKey(spec, ArtifactKeyOpts{Format: "png"})
	if key[:3] != "v1:" {
		t.Errorf("ScopedKeyer key should be prefixed: %s", key)
	}
	if key[3:] != inner.ArtifactKey(spec, ArtifactKeyOpts{Format: "png"}) {
		t.Error("ScopedKeyer should wrap the inner key unchanged")
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "v1:")
	key := scoped.ArtifactKey([]byte(`{}`), ArtifactKeyOpts{})
	if key[:12] != "v1:artifact:" {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

package cache

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	c.Set("k", "val", 0)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("nonexistent-key-xyz"); ok {
		t.Error("Get missing key: want false")
	}
}

func TestGet_Expired(t *testing.T) {
	c := NewCache()
	c.Set("short", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("Get expired key: want false")
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	c.Set("k", "x", 0)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("Delete: key should be gone")
	}
}

func TestGetOrDefault(t *testing.T) {
	c := NewCache()
	if got := c.GetOrDefault("k", "default"); got != "default" {
		t.Errorf("GetOrDefault missing = %v, want default", got)
	}
	c.Set("k", "stored", 0)
	if got := c.GetOrDefault("k", "default"); got != "stored" {
		t.Errorf("GetOrDefault found = %v, want stored", got)
	}
}

func TestKeys(t *testing.T) {
	c := NewCache()
	c.Set("b", "2", 0)
	c.Set("a", "1", 0)
	keys := c.Keys()
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys = %v, want [a b]", keys)
	}
}

func TestDumpToFile_RestoreFromFile(t *testing.T) {
	c := NewCache()
	c.Set("cart", `[{"id":"1","quantity":2}]`, 0)

	tmp := filepath.Join(t.TempDir(), "nested", "cache.json")
	if err := c.DumpToFile(tmp); err != nil {
		t.Fatalf("DumpToFile: %v", err)
	}

	restored := NewCache()
	if err := restored.RestoreFromFile(tmp); err != nil {
		t.Fatalf("RestoreFromFile: %v", err)
	}
	got, ok := restored.Get("cart")
	if !ok || got != `[{"id":"1","quantity":2}]` {
		t.Errorf("after restore Get = %v, ok=%v", got, ok)
	}
}

func TestRestoreFromFile_MissingFile(t *testing.T) {
	c := NewCache()
	if err := c.RestoreFromFile("/nonexistent/path/cache.json"); err == nil {
		t.Error("RestoreFromFile missing file: want error")
	}
}

func TestRestoreFromFile_Corrupt(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(tmp, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewCache().RestoreFromFile(tmp); err == nil {
		t.Error("RestoreFromFile corrupt file: want error")
	}
}

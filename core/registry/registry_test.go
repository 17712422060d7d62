package registry

import (
	"testing"
	"time"
)

func TestRegistry_LockUnlock(t *testing.T) {
	r := New()
	r.SetGlobal("k", []string{"a"})
	if v, ok := r.GetGlobal("k"); !ok || len(v.([]string)) != 1 {
		t.Fatalf("GetGlobal = %v, %v", v, ok)
	}
	if r.IsLocked("k") {
		t.Fatal("new key locked")
	}
	r.Lock("k")
	if !r.IsLocked("k") {
		t.Fatal("Lock did not lock")
	}
	r.UnlockForTesting("k")
	if r.IsLocked("k") {
		t.Fatal("UnlockForTesting did not unlock")
	}
}

func TestRequestRegistry_Elapsed(t *testing.T) {
	r := NewRequestRegistry()
	time.Sleep(time.Millisecond)
	if r.Elapsed() <= 0 {
		t.Fatal("Elapsed should be positive")
	}
	r.Set("user", "x")
	if v, _ := r.Get("user"); v != "x" {
		t.Fatalf("Get = %v", v)
	}
}

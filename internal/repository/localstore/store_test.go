package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s := Open(path)

	if err := s.Set("k1", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, ok := s.Get("k1")
	if !ok {
		t.Fatal("expected key to exist")
	}
	if string(doc) != `{"a":1}` {
		t.Fatalf("unexpected doc: %s", doc)
	}
}

func TestPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s1 := Open(path)
	if err := s1.Set("cart", []byte(`{"items":[],"coupon":"SAVE10"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Simulate a reload: fresh instance reading the same file.
	s2 := Open(path)
	doc, ok := s2.Get("cart")
	if !ok {
		t.Fatal("expected key to survive reload")
	}
	if string(doc) != `{"items":[],"coupon":"SAVE10"}` {
		t.Fatalf("unexpected doc after reload: %s", doc)
	}
}

func TestCorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Open(path)
	if _, ok := s.Get("anything"); ok {
		t.Fatal("corrupt file should read as empty store")
	}

	// Store must remain usable after recovery.
	if err := s.Set("k", []byte(`"v"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc, ok := s.Get("k"); !ok || string(doc) != `"v"` {
		t.Fatalf("expected recovered store to accept writes, got %q %v", doc, ok)
	}
}

func TestMissingFileTreatedAsEmpty(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "nope", "store.json"))
	if _, ok := s.Get("k"); ok {
		t.Fatal("missing file should read as empty store")
	}
}

func TestDeleteAbsentKeyIsNoop(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "store.json"))
	if err := s.Delete("ghost"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClearRemovesAllKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s := Open(path)
	_ = s.Set("a", []byte(`1`))
	_ = s.Set("b", []byte(`2`))

	if err := s.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Get("a"); ok {
		t.Fatal("expected a to be gone")
	}

	s2 := Open(path)
	if _, ok := s2.Get("b"); ok {
		t.Fatal("expected clear to persist")
	}
}

func TestReloadPicksUpExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s := Open(path)
	_ = s.Set("k", []byte(`"old"`))

	// Another process rewrites the whole file.
	if err := os.WriteFile(path, []byte(`{"k":"new"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s.Reload()
	doc, ok := s.Get("k")
	if !ok || string(doc) != `"new"` {
		t.Fatalf("expected reloaded value, got %q %v", doc, ok)
	}
}

package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ckd.json")
	if err := os.WriteFile(path, []byte(`{"kind":"gbtree"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	payload, err := store.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != `{"kind":"gbtree"}` {
		t.Fatalf("unexpected payload: %s", payload)
	}
	if store.Describe() != "file:"+path {
		t.Fatalf("unexpected description: %s", store.Describe())
	}
}

func TestFetchMissingAndEmpty(t *testing.T) {
	dir := t.TempDir()

	_, err := NewStore(filepath.Join(dir, "missing.json")).Fetch(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(empty).Fetch(context.Background()); err == nil {
		t.Fatal("expected error for empty artifact")
	}
}

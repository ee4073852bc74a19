package store

import (
	"context"
	"errors"
	"testing"
)

func TestFileStoreSaveLoad(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	ctx := context.Background()

	if err := s.Save(ctx, "meet-rooms", []byte(`[{"id":"r1"}]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := s.Load(ctx, "meet-rooms")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != `[{"id":"r1"}]` {
		t.Fatalf("unexpected data: %s", data)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	ctx := context.Background()

	if err := s.Save(ctx, "meet-rooms", []byte("first")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(ctx, "meet-rooms", []byte("second")); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	data, err := s.Load(ctx, "meet-rooms")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected latest write, got %s", data)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if _, err := s.Load(context.Background(), "never-saved"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := []byte("payload")
	if err := s.Save(ctx, "key", original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	original[0] = 'X'

	data, err := s.Load(ctx, "key")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("store aliased the caller's buffer: %s", data)
	}
}

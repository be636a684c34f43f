package testutil

import (
	"context"
	"testing"

	"github.com/orderdesk-labs/orderdesk/internal/store"
)

// NewMemoryStore opens an in-memory store with the schema applied. It is
// closed when the test finishes.
func NewMemoryStore(t testing.TB) *store.SQLiteStore {
	t.Helper()
	s := store.New(NewTestLogger(t))
	if err := s.Open(":memory:"); err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.InitSchema(); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return s
}

// NewSeededStore opens an in-memory store loaded with the sample data.
func NewSeededStore(t testing.TB) *store.SQLiteStore {
	t.Helper()
	s := NewMemoryStore(t)
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return s
}

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_New(t *testing.T) {
	s := newTestStore(t)

	if s == nil {
		t.Fatal("expected non-nil store")
	}
}

func TestStore_New_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	s, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("expected database directory to exist: %v", err)
	}
}

func TestStore_New_InvalidPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(filepath.Join(file, "test.db")); err == nil {
		t.Error("expected error when the parent is a file")
	}
}

func TestStore_GetCachedTranslation_Miss(t *testing.T) {
	s := newTestStore(t)

	text, found, err := s.GetCachedTranslation(context.Background(), "hello", "en", "fr")
	if err != nil {
		t.Errorf("GetCachedTranslation failed: %v", err)
	}
	if found {
		t.Error("expected not found for uncached translation")
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestStore_GetCachedTranslation_Hit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveToMemory(ctx, "hello", "en", "fr", "Bonjour", "gtranslate"); err != nil {
		t.Fatalf("SaveToMemory failed: %v", err)
	}

	text, found, err := s.GetCachedTranslation(ctx, "  hello ", "en", "fr")
	if err != nil {
		t.Errorf("GetCachedTranslation failed: %v", err)
	}
	if !found {
		t.Error("expected to find cached translation")
	}
	if text != "Bonjour" {
		t.Errorf("expected 'Bonjour', got %q", text)
	}

	entries, err := s.ListMemory(ctx)
	if err != nil {
		t.Fatalf("ListMemory failed: %v", err)
	}
	if len(entries) != 1 || entries[0].UsageCount != 2 {
		t.Errorf("expected one entry used twice, got %+v", entries)
	}
	if entries[0].ServiceUsed != "gtranslate" {
		t.Errorf("expected service 'gtranslate', got %q", entries[0].ServiceUsed)
	}
}

func TestStore_SaveToMemory_Replaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SaveToMemory(ctx, "hello", "en", "fr", "Salut", "mymemory")
	s.SaveToMemory(ctx, "hello", "en", "fr", "Bonjour", "gtranslate")

	text, found, _ := s.GetCachedTranslation(ctx, "hello", "en", "fr")
	if !found || text != "Bonjour" {
		t.Errorf("expected replaced entry 'Bonjour', got found=%v %q", found, text)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalEntries != 1 {
		t.Errorf("expected 1 entry, got %d", stats.TotalEntries)
	}
}

func TestStore_GetCachedTranslation_Invalidated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveToMemory(ctx, "hello", "en", "fr", "Bonjour", "gtranslate"); err != nil {
		t.Fatalf("SaveToMemory failed: %v", err)
	}

	entries, err := s.ListMemory(ctx)
	if err != nil {
		t.Fatalf("ListMemory failed: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one entry")
	}

	if err := s.InvalidateMemory(ctx, entries[0].ID); err != nil {
		t.Fatalf("InvalidateMemory failed: %v", err)
	}

	text, found, err := s.GetCachedTranslation(ctx, "hello", "en", "fr")
	if err != nil {
		t.Errorf("GetCachedTranslation failed: %v", err)
	}
	if found {
		t.Error("expected not found for invalidated translation")
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}

	stats, _ := s.Stats(ctx)
	if stats.InvalidEntries != 1 || stats.ActiveEntries != 0 {
		t.Errorf("unexpected stats after invalidation: %+v", stats)
	}
}

func TestStore_Stats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Errorf("Stats failed: %v", err)
	}
	if stats.TotalEntries != 0 {
		t.Errorf("expected 0 total entries, got %d", stats.TotalEntries)
	}

	s.SaveToMemory(ctx, "hello", "en", "fr", "Bonjour", "gtranslate")
	s.SaveToMemory(ctx, "world", "en", "fr", "Monde", "gtranslate")

	stats, err = s.Stats(ctx)
	if err != nil {
		t.Errorf("Stats failed: %v", err)
	}
	if stats.TotalEntries != 2 {
		t.Errorf("expected 2 total entries, got %d", stats.TotalEntries)
	}
	if stats.ActiveEntries != 2 {
		t.Errorf("expected 2 active entries, got %d", stats.ActiveEntries)
	}
	if stats.TotalUsage != 2 {
		t.Errorf("expected total usage 2, got %d", stats.TotalUsage)
	}
}

func TestStore_DeleteMemory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SaveToMemory(ctx, "hello", "en", "fr", "Bonjour", "gtranslate")

	entries, err := s.ListMemory(ctx)
	if err != nil {
		t.Fatalf("ListMemory failed: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one entry")
	}

	if err := s.DeleteMemory(ctx, entries[0].ID); err != nil {
		t.Errorf("DeleteMemory failed: %v", err)
	}

	entries, err = s.ListMemory(ctx)
	if err != nil {
		t.Fatalf("ListMemory failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries after delete, got %d", len(entries))
	}
}

func TestStore_DeleteMemory_Unknown(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteMemory(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ClearMemory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SaveToMemory(ctx, "hello", "en", "fr", "Bonjour", "gtranslate")
	s.SaveToMemory(ctx, "world", "en", "fr", "Monde", "gtranslate")

	count, err := s.ClearMemory(ctx)
	if err != nil {
		t.Errorf("ClearMemory failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 cleared, got %d", count)
	}

	entries, err := s.ListMemory(ctx)
	if err != nil {
		t.Fatalf("ListMemory failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries after clear, got %d", len(entries))
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  hello  ", "hello"},
		{"café", "café"},
		{"\t\nhello\t\n", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := normalizeText(tt.input)
		if result != tt.expected {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestStore_MultipleLanguagePairs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SaveToMemory(ctx, "hello", "en", "uk", "Привіт", "gtranslate")
	s.SaveToMemory(ctx, "hello", "en", "de", "Hallo", "gtranslate")
	s.SaveToMemory(ctx, "hello", "en", "fr", "Bonjour", "gtranslate")

	for dst, want := range map[string]string{"uk": "Привіт", "de": "Hallo", "fr": "Bonjour"} {
		text, found, _ := s.GetCachedTranslation(ctx, "hello", "en", dst)
		if !found || text != want {
			t.Errorf("en->%s: expected found=true and %q, got found=%v and %q", dst, want, found, text)
		}
	}

	if _, found, _ := s.GetCachedTranslation(ctx, "hello", "en", "es"); found {
		t.Error("en->es: expected not found")
	}
}

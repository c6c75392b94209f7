package localfs

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	key := "doc-1_passport.pdf"
	if err := storage.Save(context.Background(), key, strings.NewReader("%PDF-1.4")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reader, err := storage.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "%PDF-1.4" {
		t.Fatalf("unexpected content %q", raw)
	}
}

func TestKeysCannotEscapeStorageRoot(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := storage.Save(context.Background(), "../../escape.txt", strings.NewReader("data")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// The traversal components are stripped, so the flattened key opens
	// the same file.
	reader, err := storage.Open(context.Background(), "escape.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	reader.Close()
}

func TestOpenMissingKeyFails(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := storage.Open(context.Background(), "missing.pdf"); err == nil {
		t.Fatalf("expected error")
	}
}

package fsx

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestOpenFile(t *testing.T) {
	t.Run("with a regular file", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(filename, []byte("antani"), 0600); err != nil {
			t.Fatal(err)
		}
		file, err := OpenFile(filename)
		if err != nil {
			t.Fatal(err)
		}
		file.Close()
	})

	t.Run("with a nonexistent file", func(t *testing.T) {
		file, err := OpenFile(filepath.Join(t.TempDir(), "missing.txt"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatal("unexpected error", err)
		}
		if file != nil {
			t.Fatal("expected nil file")
		}
	})

	t.Run("with a directory", func(t *testing.T) {
		file, err := OpenFile(t.TempDir())
		if !errors.Is(err, syscall.EISDIR) {
			t.Fatal("unexpected error", err)
		}
		if file != nil {
			t.Fatal("expected nil file")
		}
	})
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hdfkit/hdf5build/internal/must"
)

func TestCopyInstalledDLLs(t *testing.T) {
	t.Run("copies every dll and nothing else", func(t *testing.T) {
		installPath := t.TempDir()
		binDir := filepath.Join(installPath, "bin")
		libDir := filepath.Join(installPath, "lib")
		for _, dir := range []string{binDir, libDir} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				t.Fatal(err)
			}
		}
		must.WriteFile(filepath.Join(binDir, "hdf5.dll"), []byte("core"), 0644)
		must.WriteFile(filepath.Join(binDir, "hdf5_hl.dll"), []byte("hl"), 0644)
		must.WriteFile(filepath.Join(binDir, "h5dump.exe"), []byte("tool"), 0644)

		if err := copyInstalledDLLs(installPath); err != nil {
			t.Fatal(err)
		}

		data := must.ReadFile(filepath.Join(libDir, "hdf5.dll"))
		if diff := cmp.Diff([]byte("core"), data); diff != "" {
			t.Fatal(diff)
		}
		data = must.ReadFile(filepath.Join(libDir, "hdf5_hl.dll"))
		if diff := cmp.Diff([]byte("hl"), data); diff != "" {
			t.Fatal(diff)
		}
		if _, err := os.Stat(filepath.Join(libDir, "h5dump.exe")); !os.IsNotExist(err) {
			t.Fatal("executables should not be copied")
		}
	})

	t.Run("is a no-op without dlls", func(t *testing.T) {
		if err := copyInstalledDLLs(t.TempDir()); err != nil {
			t.Fatal(err)
		}
	})
}

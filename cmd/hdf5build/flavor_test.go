package main

import (
	"path/filepath"
	"testing"
)

func TestNewBuildFlavor(t *testing.T) {
	t.Run("for windows", func(t *testing.T) {
		flavor := newBuildFlavor("windows")
		if flavor.system != buildSystemCMake {
			t.Fatal("expected cmake")
		}
		if flavor.archive != archiveFormatZip {
			t.Fatal("expected zip")
		}
		if flavor.cacheArtifact != filepath.Join("lib", "hdf5.dll") {
			t.Fatal("unexpected cache artifact", flavor.cacheArtifact)
		}
	})

	t.Run("for everything else", func(t *testing.T) {
		for _, goos := range []string{"linux", "darwin", "freebsd"} {
			flavor := newBuildFlavor(goos)
			if flavor.system != buildSystemAutotools {
				t.Fatal("expected autotools for", goos)
			}
			if flavor.archive != archiveFormatTarGz {
				t.Fatal("expected tar.gz for", goos)
			}
			if flavor.cacheArtifact != filepath.Join("lib", "libhdf5.so") {
				t.Fatal("unexpected cache artifact", flavor.cacheArtifact)
			}
		}
	})
}

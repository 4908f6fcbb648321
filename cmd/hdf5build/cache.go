package main

//
// Cache check
//

import (
	"os"
	"path/filepath"
)

// hdf5Cached returns whether a previous run already installed HDF5
// under installPath. This is a file-existence heuristic on the
// flavor's expected artifact, not a content check. An empty install
// path never counts as cached.
func hdf5Cached(installPath string, flavor *buildFlavor) bool {
	if installPath == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(installPath, flavor.cacheArtifact))
	return err == nil
}

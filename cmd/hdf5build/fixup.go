package main

//
// Post-build fixup
//

import (
	"path/filepath"

	"github.com/apex/log"
	"github.com/hdfkit/hdf5build/internal/shellx"
)

// copyInstalledDLLs copies every dll the CMake build left under the
// install prefix's bin directory into the lib directory, where the
// downstream consumer expects to find libraries.
func copyInstalledDLLs(installPath string) error {
	log.Info("Copying HDF5 dlls")
	matches, err := filepath.Glob(filepath.Join(installPath, "bin", "*.dll"))
	if err != nil {
		return err
	}
	for _, match := range matches {
		dest := filepath.Join(installPath, "lib", filepath.Base(match))
		if err := shellx.CopyFile(match, dest, 0644); err != nil {
			return err
		}
	}
	return nil
}

package main

//
// Install-tree reporting
//

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/apex/log"
	"github.com/hdfkit/hdf5build/internal/must"
)

// reportInstalledFiles walks the install prefix and prints every
// installed file to the given writer for pipeline log visibility.
func reportInstalledFiles(writer io.Writer, installPath string) error {
	log.Info("hdf5 files:")
	return filepath.WalkDir(installPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		must.Fprintf(writer, " * %s\n", path)
		return nil
	})
}

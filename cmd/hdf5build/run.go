package main

//
// The linear pipeline: cache check, download, build, fixup, report
//

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/hdfkit/hdf5build/internal/model"
	"github.com/hdfkit/hdf5build/internal/shellx"
)

// run executes the whole pipeline. The run is strictly sequential:
// every step completes before the next one starts and the first
// failure aborts everything downstream.
func run(config *buildConfig, flavor *buildFlavor, client model.HTTPClient) error {
	if config.vsVersion == "9-64" {
		// Needed for
		// http://help.appveyor.com/discussions/kb/38-visual-studio-2008-64-bit-builds
		if err := applyVS2008Patch(); err != nil {
			return err
		}
	}

	if hdf5Cached(config.installPath, flavor) {
		log.Info("using cached hdf5")
	} else {
		if err := downloadAndBuild(config, flavor, client); err != nil {
			return err
		}
	}

	if config.installPath != "" {
		return reportInstalledFiles(os.Stdout, config.installPath)
	}
	return nil
}

// downloadAndBuild fetches the source archive into a temporary file,
// removed on every exit path, and then builds from it.
func downloadAndBuild(config *buildConfig, flavor *buildFlavor, client model.HTTPClient) error {
	archive, err := os.CreateTemp("", "hdf5-src-")
	if err != nil {
		return err
	}
	defer os.Remove(archive.Name())
	downloadErr := downloadHDF5(client, config.version, flavor, archive)
	closeErr := archive.Close()
	if downloadErr != nil {
		return downloadErr
	}
	if closeErr != nil {
		return closeErr
	}

	if err := buildHDF5(config, flavor, archive.Name()); err != nil {
		return err
	}

	if flavor.system == buildSystemCMake {
		return copyInstalledDLLs(config.installPath)
	}
	return nil
}

// applyVS2008Patch runs the AppVeyor helper enabling 64-bit builds
// with the Visual Studio 2008 toolchain.
func applyVS2008Patch() error {
	script := filepath.Join("ci", "appveyor", "vs2008_patch", "setup_x64.bat")
	return shellx.Run(log.Log, script)
}

package main

//
// Driving the native build
//

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/hdfkit/hdf5build/internal/must"
	"github.com/hdfkit/hdf5build/internal/shellx"
)

// buildHDF5 unpacks the downloaded archive and drives the flavor's
// build system to completion. The extraction directory and, for
// CMake, the build working directory are temporary and removed on
// every exit path.
func buildHDF5(config *buildConfig, flavor *buildFlavor, archivePath string) error {
	extractDir, err := os.MkdirTemp("", "hdf5-extract-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(extractDir)
	if err := extractArchive(flavor, archivePath, extractDir); err != nil {
		return err
	}
	sourceDir := unpackedSourcePath(config.version, extractDir)

	var (
		configure []string
		builds    [][]string
		workDir   string
	)
	switch flavor.system {
	case buildSystemAutotools:
		workDir = sourceDir
		if err := prepareAutotools(sourceDir); err != nil {
			return err
		}
		configure, builds = autotoolsCommands(sourceDir, config.installPath, config.withMPI)
	case buildSystemCMake:
		cmakeWorkDir, err := os.MkdirTemp("", "hdf5-cmake-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(cmakeWorkDir)
		workDir = cmakeWorkDir
		configure, builds = cmakeCommands(
			sourceDir, config.installPath, config.generator, config.usePrefix)
	default:
		panic(fmt.Errorf("unknown build system: %d", flavor.system))
	}

	log.Infof("Configuring HDF5 version %s...", config.version)
	if err := runConfigureCommand(workDir, configure); err != nil {
		return err
	}
	log.Infof("Building HDF5 version %s...", config.version)
	for _, command := range builds {
		if err := runBuildCommand(workDir, command); err != nil {
			return err
		}
	}
	log.Infof("Installed HDF5 version %s to %s", config.version, config.installPath)
	return nil
}

// prepareAutotools makes autogen.sh executable and runs it from the
// unpacked source directory. Release tarballs ship the script without
// the executable bit set.
func prepareAutotools(sourceDir string) error {
	autogen := filepath.Join(sourceDir, "autogen.sh")
	if err := shellx.Run(log.Log, "chmod", "+x", autogen); err != nil {
		return err
	}
	argv, err := shellx.NewArgv(autogen)
	if err != nil {
		return err
	}
	return shellx.RunEx(workDirConfig(sourceDir), argv, &shellx.Envp{})
}

// runConfigureCommand runs the configure command in workDir capturing
// its standard output, which we then print for pipeline logs.
func runConfigureCommand(workDir string, command []string) error {
	argv, err := shellx.NewArgv(command[0], command[1:]...)
	if err != nil {
		return err
	}
	output, err := shellx.OutputEx(workDirConfig(workDir), argv, &shellx.Envp{})
	if len(output) > 0 {
		must.Fprintf(os.Stdout, "%s", output)
	}
	return err
}

// runBuildCommand runs a single build command in workDir connecting
// its output to ours.
func runBuildCommand(workDir string, command []string) error {
	argv, err := shellx.NewArgv(command[0], command[1:]...)
	if err != nil {
		return err
	}
	return shellx.RunEx(workDirConfig(workDir), argv, &shellx.Envp{})
}

// workDirConfig returns the [*shellx.Config] for running a child
// process inside the given working directory.
func workDirConfig(workDir string) *shellx.Config {
	return &shellx.Config{
		Logger: log.Log,
		Flags:  shellx.FlagShowStdoutStderr,
		Dir:    workDir,
	}
}

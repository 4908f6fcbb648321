package main

//
// Platform flavor dispatch
//

import "path/filepath"

// buildSystem selects the native build system we drive.
type buildSystem int

const (
	// buildSystemAutotools drives configure/make/make-install.
	buildSystemAutotools = buildSystem(iota)

	// buildSystemCMake drives cmake configure plus cmake --build.
	buildSystemCMake
)

// archiveFormat selects the source-archive packaging.
type archiveFormat int

const (
	// archiveFormatTarGz is a gzip-compressed tarball.
	archiveFormatTarGz = archiveFormat(iota)

	// archiveFormatZip is a zip archive.
	archiveFormatZip
)

// buildFlavor binds together the build system, the archive format,
// and the cache artifact for the host platform. We resolve the
// flavor once at startup and thread it explicitly through the run
// rather than re-checking the platform at each step.
type buildFlavor struct {
	// system is the build system to drive.
	system buildSystem

	// archive is the expected source-archive format.
	archive archiveFormat

	// cacheArtifact is the path, relative to the install prefix,
	// whose existence marks a previous successful install.
	cacheArtifact string
}

// newBuildFlavor maps the given GOOS to the flavor we build with. On
// Windows upstream ships zip archives and the build uses CMake; on
// every other platform upstream ships gzipped tarballs and the build
// uses autotools.
func newBuildFlavor(goos string) *buildFlavor {
	if goos == "windows" {
		return &buildFlavor{
			system:        buildSystemCMake,
			archive:       archiveFormatZip,
			cacheArtifact: filepath.Join("lib", "hdf5.dll"),
		}
	}
	return &buildFlavor{
		system:        buildSystemAutotools,
		archive:       archiveFormatTarGz,
		cacheArtifact: filepath.Join("lib", "libhdf5.so"),
	}
}

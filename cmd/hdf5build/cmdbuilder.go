package main

//
// Build command construction
//

import "path/filepath"

// cmakeConfigureFlags are the fixed flags we always pass to the
// CMake configure step: shared libraries, release build, no C++
// library, high-level library and tools enabled.
var cmakeConfigureFlags = []string{
	"-DBUILD_SHARED_LIBS:BOOL=ON",
	"-DCMAKE_BUILD_TYPE:STRING=RELEASE",
	"-DHDF5_BUILD_CPP_LIB=OFF",
	"-DHDF5_BUILD_HL_LIB=ON",
	"-DHDF5_BUILD_TOOLS:BOOL=ON",
}

// cmakeLibraryPrefixFlag prefixes exported symbols so h5py can ship
// its own copy of the library without clashing with a system one.
const cmakeLibraryPrefixFlag = "-DHDF5_EXTERNAL_LIB_PREFIX=h5py_"

// unpackedSourcePath returns the source root inside the extraction
// directory. Upstream archives unpack to an hdf5-{version} directory.
func unpackedSourcePath(version, extractDir string) string {
	return filepath.Join(extractDir, "hdf5-"+version)
}

// autotoolsCommands returns the configure command and the build
// commands for the autotools flavor. All of them must run with the
// working directory set to sourceDir.
func autotoolsCommands(sourceDir, installPath string, withMPI bool) (configure []string, builds [][]string) {
	configure = []string{filepath.Join(sourceDir, "configure"), "--prefix", installPath}
	if withMPI {
		configure = append(configure, "--enable-parallel")
	}
	builds = [][]string{{"make"}, {"make", "install"}}
	return
}

// cmakeInstallPathArg renders the install-prefix flag. When no
// install path was requested we emit a blank argument rather than a
// malformed `-DCMAKE_INSTALL_PREFIX=` flag.
func cmakeInstallPathArg(installPath string) string {
	if installPath != "" {
		return "-DCMAKE_INSTALL_PREFIX=" + installPath
	}
	return " "
}

// cmakeCommands returns the configure command and the build commands
// for the CMake flavor. Both must run from a separate empty working
// directory, not from sourceDir.
func cmakeCommands(sourceDir, installPath, generator string, usePrefix bool) (configure []string, builds [][]string) {
	configure = append([]string{"cmake"}, cmakeConfigureFlags...)
	configure = append(configure, cmakeInstallPathArg(installPath), sourceDir)
	if generator != "" {
		configure = append(configure, "-G", generator)
	}
	if usePrefix {
		configure = append(configure, cmakeLibraryPrefixFlag)
	}
	builds = [][]string{{"cmake", "--build", ".", "--target", "install", "--config", "Release"}}
	return
}

package main

//
// Environment-driven configuration
//

import (
	"errors"
	"fmt"
	"os"
)

// defaultVersion is the HDF5 release we build when the
// environment does not select one.
const defaultVersion = "1.8.17"

// vsVersionToGenerator maps the HDF5_VSVERSION token to the
// corresponding CMake generator name.
var vsVersionToGenerator = map[string]string{
	"9":     "Visual Studio 9 2008",
	"10":    "Visual Studio 10 2010",
	"14":    "Visual Studio 14 2015",
	"9-64":  "Visual Studio 9 2008 Win64",
	"10-64": "Visual Studio 10 2010 Win64",
	"14-64": "Visual Studio 14 2015 Win64",
}

// errUnknownVSVersion means HDF5_VSVERSION contains a token that
// does not name a known Visual Studio generator.
var errUnknownVSVersion = errors.New("unknown visual studio version")

// buildConfig is the immutable per-run configuration resolved
// from the environment when the program starts.
type buildConfig struct {
	// version is the HDF5 release to build.
	version string

	// installPath is the install prefix. Empty means that the
	// caller did not request a specific prefix.
	installPath string

	// vsVersion is the raw HDF5_VSVERSION token.
	vsVersion string

	// generator is the CMake generator derived from vsVersion,
	// or empty when no generator was requested.
	generator string

	// usePrefix indicates whether to prefix the exported
	// library symbols with "h5py_".
	usePrefix bool

	// withMPI indicates whether to build with parallel MPI support.
	withMPI bool
}

// environFunc looks up an environment variable and reports
// whether it was set. os.LookupEnv implements this.
type environFunc func(key string) (string, bool)

// resolveConfig fills in a [*buildConfig] from the environment. The
// only side effect is creating the install directory when the caller
// requested one that does not exist yet.
func resolveConfig(lookupEnv environFunc) (*buildConfig, error) {
	config := &buildConfig{}

	config.installPath, _ = lookupEnv("HDF5_DIR")

	version, found := lookupEnv("HDF5_VERSION")
	if !found || version == "" {
		version = defaultVersion
	}
	config.version = version

	_, config.usePrefix = lookupEnv("H5PY_USE_PREFIX")

	mpi, _ := lookupEnv("HDF5_MPI")
	config.withMPI = mpi == "ON"

	vsVersion, found := lookupEnv("HDF5_VSVERSION")
	if found && vsVersion != "" {
		generator, known := vsVersionToGenerator[vsVersion]
		if !known {
			return nil, fmt.Errorf("%w: %s", errUnknownVSVersion, vsVersion)
		}
		config.vsVersion = vsVersion
		config.generator = generator
	}

	if config.installPath != "" {
		if err := os.MkdirAll(config.installPath, 0755); err != nil {
			return nil, err
		}
	}
	return config, nil
}

package main

//
// Main
//

import (
	"net/http"
	"os"
	"runtime"

	"github.com/apex/log"
	"github.com/hdfkit/hdf5build/internal/logx"
	"github.com/hdfkit/hdf5build/internal/runtimex"
	"github.com/spf13/cobra"
)

func main() {
	logHandler := logx.NewHandlerWithDefaultSettings()
	logHandler.Emoji = true
	log.Log = &log.Logger{Level: log.InfoLevel, Handler: logHandler}

	root := &cobra.Command{
		Use:   "hdf5build",
		Short: "Fetches, builds, and installs HDF5 for CI pipelines",
		Long: `hdf5build downloads the HDF5 source release selected by the
HDF5_VERSION environment variable, unpacks it, and drives the native
build system (autotools on unix-like systems, CMake on Windows) to
install binaries under HDF5_DIR. All configuration is environment
driven; the command takes no arguments.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			mainRun()
		},
	}
	err := root.Execute()
	runtimex.PanicOnError(err, "root.Execute")
}

// mainRun is the single boundary that maps any failure, either an
// explicit error or a propagated panic, to a diagnostic message and
// a nonzero exit code. Errors propagate up to here as return values
// so that deferred temporary-resource cleanup always runs first.
func mainRun() {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("%+v", r)
		}
	}()
	config, err := resolveConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
	flavor := newBuildFlavor(runtime.GOOS)
	if err := run(config, flavor, http.DefaultClient); err != nil {
		log.Fatalf("%s", err.Error())
	}
}

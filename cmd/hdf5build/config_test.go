package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// makeEnviron creates an [environFunc] reading from the given map. A
// key present with an empty value counts as set, like os.LookupEnv.
func makeEnviron(values map[string]string) environFunc {
	return func(key string) (string, bool) {
		value, found := values[key]
		return value, found
	}
}

func TestResolveConfig(t *testing.T) {
	t.Run("with an empty environment", func(t *testing.T) {
		config, err := resolveConfig(makeEnviron(nil))
		if err != nil {
			t.Fatal(err)
		}
		expect := &buildConfig{
			version: "1.8.17",
		}
		if diff := cmp.Diff(expect, config, cmp.AllowUnexported(buildConfig{})); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with every knob set", func(t *testing.T) {
		installPath := filepath.Join(t.TempDir(), "hdf5")
		config, err := resolveConfig(makeEnviron(map[string]string{
			"HDF5_DIR":        installPath,
			"HDF5_VERSION":    "1.10.2",
			"HDF5_VSVERSION":  "14-64",
			"H5PY_USE_PREFIX": "1",
			"HDF5_MPI":        "ON",
		}))
		if err != nil {
			t.Fatal(err)
		}
		expect := &buildConfig{
			version:     "1.10.2",
			installPath: installPath,
			vsVersion:   "14-64",
			generator:   "Visual Studio 14 2015 Win64",
			usePrefix:   true,
			withMPI:     true,
		}
		if diff := cmp.Diff(expect, config, cmp.AllowUnexported(buildConfig{})); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("creates the install directory when missing", func(t *testing.T) {
		installPath := filepath.Join(t.TempDir(), "nested", "prefix")
		if _, err := resolveConfig(makeEnviron(map[string]string{
			"HDF5_DIR": installPath,
		})); err != nil {
			t.Fatal(err)
		}
		info, err := os.Stat(installPath)
		if err != nil {
			t.Fatal(err)
		}
		if !info.IsDir() {
			t.Fatal("expected a directory")
		}
	})

	t.Run("the prefix flag counts as set even when empty", func(t *testing.T) {
		config, err := resolveConfig(makeEnviron(map[string]string{
			"H5PY_USE_PREFIX": "",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if !config.usePrefix {
			t.Fatal("expected usePrefix to be true")
		}
	})

	t.Run("MPI requires the literal ON value", func(t *testing.T) {
		config, err := resolveConfig(makeEnviron(map[string]string{
			"HDF5_MPI": "yes",
		}))
		if err != nil {
			t.Fatal(err)
		}
		if config.withMPI {
			t.Fatal("expected withMPI to be false")
		}
	})

	t.Run("with an unknown visual studio token", func(t *testing.T) {
		config, err := resolveConfig(makeEnviron(map[string]string{
			"HDF5_VSVERSION": "17-64",
		}))
		if !errors.Is(err, errUnknownVSVersion) {
			t.Fatal("unexpected error", err)
		}
		if config != nil {
			t.Fatal("expected nil config")
		}
	})

	t.Run("every known visual studio token maps to a generator", func(t *testing.T) {
		expect := map[string]string{
			"9":     "Visual Studio 9 2008",
			"10":    "Visual Studio 10 2010",
			"14":    "Visual Studio 14 2015",
			"9-64":  "Visual Studio 9 2008 Win64",
			"10-64": "Visual Studio 10 2010 Win64",
			"14-64": "Visual Studio 14 2015 Win64",
		}
		for token, generator := range expect {
			config, err := resolveConfig(makeEnviron(map[string]string{
				"HDF5_VSVERSION": token,
			}))
			if err != nil {
				t.Fatal(err)
			}
			if config.generator != generator {
				t.Fatal("for", token, "got", config.generator)
			}
		}
	})
}

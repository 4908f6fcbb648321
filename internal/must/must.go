// Package must contains functions that panic on error.
package must

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/hdfkit/hdf5build/internal/model"
	"github.com/hdfkit/hdf5build/internal/runtimex"
	"github.com/hdfkit/hdf5build/internal/shellx"
)

// CreateFile is like [os.Create] but calls
// [runtimex.PanicOnError] on failure.
func CreateFile(name string) *File {
	fp, err := os.Create(name)
	runtimex.PanicOnError(err, "os.Create failed")
	return &File{fp}
}

// OpenFile is like [os.Open] but calls
// [runtimex.PanicOnError] on failure.
func OpenFile(name string) *File {
	fp, err := os.Open(name)
	runtimex.PanicOnError(err, "os.Open failed")
	return &File{fp}
}

// File wraps [os.File].
type File struct {
	*os.File
}

// MustClose is like [os.File.Close] but calls
// [runtimex.PanicOnError] on failure.
func (fp *File) MustClose() {
	err := fp.File.Close()
	runtimex.PanicOnError(err, "fp.File.Close failed")
}

// Fprintf is like [fmt.Fprintf] but calls
// [runtimex.PanicOnError] on failure.
func Fprintf(w io.Writer, format string, v ...any) {
	_, err := fmt.Fprintf(w, format, v...)
	runtimex.PanicOnError(err, "fmt.Fprintf failed")
}

// Run is like [shellx.Run] but calls [runtimex.PanicOnError] on failure.
func Run(logger model.Logger, command string, args ...string) {
	err := shellx.Run(logger, command, args...)
	runtimex.PanicOnError(err, "shellx.Run failed")
}

// RunQuiet is like [shellx.RunQuiet] but calls [runtimex.PanicOnError] on failure.
func RunQuiet(command string, args ...string) {
	err := shellx.RunQuiet(command, args...)
	runtimex.PanicOnError(err, "shellx.RunQuiet failed")
}

// WriteFile is like [os.WriteFile] but calls
// [runtimex.PanicOnError] on failure.
func WriteFile(filename string, content []byte, mode fs.FileMode) {
	err := os.WriteFile(filename, content, mode)
	runtimex.PanicOnError(err, "os.WriteFile failed")
}

// ReadFile is like [os.ReadFile] but calls
// [runtimex.PanicOnError] on failure.
func ReadFile(filename string) []byte {
	data, err := os.ReadFile(filename)
	runtimex.PanicOnError(err, "os.ReadFile failed")
	return data
}

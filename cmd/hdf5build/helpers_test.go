package main

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"net/http"

	"github.com/hdfkit/hdf5build/internal/mocks"
	"github.com/hdfkit/hdf5build/internal/runtimex"
)

// newHTTPResponse creates a minimal response with the given
// status code and body.
func newHTTPResponse(code int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: code,
		Status:     http.StatusText(code),
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

// newHTTPClientWithStatus creates a client always answering with the
// given status code and an empty body.
func newHTTPClientWithStatus(code int) *mocks.HTTPClient {
	return &mocks.HTTPClient{
		MockDo: func(req *http.Request) (*http.Response, error) {
			return newHTTPResponse(code, nil), nil
		},
	}
}

// newHTTPClientWithBody creates a client always answering 200 with
// the given body.
func newHTTPClientWithBody(body []byte) *mocks.HTTPClient {
	return &mocks.HTTPClient{
		MockDo: func(req *http.Request) (*http.Response, error) {
			return newHTTPResponse(http.StatusOK, body), nil
		},
	}
}

// archiveEntry is a file to include in a synthetic source archive.
type archiveEntry struct {
	name string
	body string
	mode int64
}

// sourceEntries returns the minimal file set of an HDF5
// source archive for the given version.
func sourceEntries(version string) []archiveEntry {
	root := "hdf5-" + version + "/"
	return []archiveEntry{
		{name: root + "autogen.sh", body: "#!/bin/sh\n", mode: 0644},
		{name: root + "configure", body: "#!/bin/sh\n", mode: 0755},
		{name: root + "README.txt", body: "HDF5 " + version + "\n", mode: 0644},
	}
}

// makeSourceTarGz builds an in-memory gzipped source tarball.
func makeSourceTarGz(version string) []byte {
	buffer := &bytes.Buffer{}
	gzwriter := gzip.NewWriter(buffer)
	twriter := tar.NewWriter(gzwriter)
	runtimex.Try0(twriter.WriteHeader(&tar.Header{
		Name:     "hdf5-" + version + "/",
		Typeflag: tar.TypeDir,
		Mode:     0755,
	}))
	for _, entry := range sourceEntries(version) {
		runtimex.Try0(twriter.WriteHeader(&tar.Header{
			Name:     entry.name,
			Typeflag: tar.TypeReg,
			Mode:     entry.mode,
			Size:     int64(len(entry.body)),
		}))
		_ = runtimex.Try1(twriter.Write([]byte(entry.body)))
	}
	runtimex.Try0(twriter.Close())
	runtimex.Try0(gzwriter.Close())
	return buffer.Bytes()
}

// makeSourceZip builds an in-memory zip source archive.
func makeSourceZip(version string) []byte {
	buffer := &bytes.Buffer{}
	zwriter := zip.NewWriter(buffer)
	for _, entry := range sourceEntries(version) {
		writer := runtimex.Try1(zwriter.Create(entry.name))
		_ = runtimex.Try1(writer.Write([]byte(entry.body)))
	}
	runtimex.Try0(zwriter.Close())
	return buffer.Bytes()
}

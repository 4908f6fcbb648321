// Package testingx contains extensions for testing.
package testingx

import (
	"net/http"
	"net/http/httptest"
)

// MustNewHTTPServer creates a new [*httptest.Server] using the
// given [http.Handler] and panics on failure.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	return httptest.NewServer(handler)
}

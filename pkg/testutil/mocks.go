// Package testutil holds the HTTP test doubles shared by the netcheck,
// readiness and CLI tests.
package testutil

import (
	"io"
	"net/http"
	"strings"
)

// MockHTTPClient satisfies netcheck.HTTPClient by calling DoFunc.
type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.DoFunc(req)
}

// MockResponse returns a response with the given status code. HEAD
// responses carry no body, so body is usually empty.
func MockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

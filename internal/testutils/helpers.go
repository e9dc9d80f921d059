// Package testutils holds small helpers shared across package tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwick/shelf-api/internal/api/shared"
)

// DiscardLogger returns a logger whose output goes nowhere. Tests that
// only need a logger for wiring use this.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreateTestServer creates an httptest server with the given handler
// and registers cleanup via t.Cleanup().
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
	})
	return server
}

// DoJSON issues a request with an optional JSON body against the test
// server and returns the response. The body is closed via t.Cleanup().
func DoJSON(t *testing.T, server *httptest.Server, method, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "failed to build request")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "request failed")
	t.Cleanup(func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("warning: failed to close response body: %v", err)
		}
	})
	return resp
}

// DecodeResponse decodes the response body into dst.
func DecodeResponse(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst),
		"failed to decode response body")
}

// AssertErrorResponse checks the status code and that the uniform
// error envelope carries the expected machine-readable code.
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedCode string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"expected status code %d but got %d", expectedStatus, resp.StatusCode)

	var errResp shared.ErrorResponse
	DecodeResponse(t, resp, &errResp)
	assert.Equal(t, expectedCode, errResp.Code,
		"expected error code %q but got %q (message: %q)",
		expectedCode, errResp.Code, errResp.Error)
	assert.NotEmpty(t, errResp.Error, "error message should not be empty")
}

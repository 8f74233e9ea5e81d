package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/concentration/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler and
// closes it when the test ends.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// DoJSON sends a request with an optional JSON body to the test server and
// returns the response. The body is closed when the test ends.
func DoJSON(t *testing.T, server *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Warning: failed to close response body: %v", err)
		}
	})
	return resp
}

// DecodeResponse decodes a JSON response body into T.
func DecodeResponse[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v), "Failed to decode response body")
	return v
}

// AssertErrorResponse checks the status code and that the error message
// contains expectedErrorMsgPart.
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedErrorMsgPart string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode)

	errResp := DecodeResponse[shared.ErrorResponse](t, resp)
	assert.Contains(t, errResp.Error, expectedErrorMsgPart)
}

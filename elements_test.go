package humadocs_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/humadocs"
)

func fetchDocsPage(t *testing.T, h http.Handler) (*http.Response, string) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, resp.Body.Close()) })

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestElements_defaults(t *testing.T) {
	t.Parallel()

	resp, body := fetchDocsPage(t, humadocs.Elements())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "API Reference")
	assert.Contains(t, body, "elements-api")
	assert.Contains(t, body, "stoplight")
	assert.Contains(t, body, "/openapi.json")
}

func TestElements_options(t *testing.T) {
	t.Parallel()

	_, body := fetchDocsPage(t, humadocs.Elements(
		humadocs.WithElementsTitle("Billing API"),
		humadocs.WithSpecURL("/api/spec.json"),
	))

	assert.Contains(t, body, "Billing API")
	assert.Contains(t, body, "/api/spec.json")
}

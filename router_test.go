package humadocs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/humadocs"
)

func newTestAPI() (huma.API, *http.ServeMux) {
	mux := http.NewServeMux()
	return humago.New(mux, huma.DefaultConfig("Test API", "1.0.0")), mux
}

type messageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

func messageHandler(msg string) func(context.Context, *struct{}) (*messageOutput, error) {
	return func(_ context.Context, _ *struct{}) (*messageOutput, error) {
		out := &messageOutput{}
		out.Body.Message = msg
		return out, nil
	}
}

func getOp(id, path string) huma.Operation {
	return huma.Operation{OperationID: id, Method: http.MethodGet, Path: path}
}

func TestTagRouter_stamps_every_route(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI()

	billing := humadocs.NewTagRouter("Billing")
	humadocs.Add(billing, getOp("GetA", "/a"), messageHandler("a"))
	humadocs.Add(billing, getOp("GetB", "/b"), messageHandler("b"))

	other := humadocs.New()
	humadocs.Add(other, getOp("GetX", "/x"), messageHandler("x"), humadocs.Tag("Other"))
	billing.Nest("/c", other)

	billing.Router().Mount(api)

	paths := api.OpenAPI().Paths
	require.Contains(t, paths, "/a")
	require.Contains(t, paths, "/b")
	require.Contains(t, paths, "/c/x")

	assert.Equal(t, []string{"Billing"}, paths["/a"].Get.Tags)
	assert.Equal(t, []string{"Billing"}, paths["/b"].Get.Tags)

	// Nested routes keep their own tags, unstamped.
	assert.Equal(t, []string{"Other"}, paths["/c/x"].Get.Tags)
}

func TestTagRouter_tag_applies_after_docs(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI()

	users := humadocs.NewTagRouter("Users")
	humadocs.Add(users, getOp("List", "/users"), messageHandler("users"),
		humadocs.RouteInfo("List users", "Returns every user."))
	users.Router().Mount(api)

	op := api.OpenAPI().Paths["/users"].Get
	require.NotNil(t, op)
	assert.Equal(t, "List users", op.Summary)
	assert.Equal(t, "Returns every user.", op.Description)
	assert.Equal(t, []string{"Users"}, op.Tags)
}

func TestRouter_nest_prefixes_paths(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI()

	sub := humadocs.New()
	humadocs.Add(sub, getOp("GetItem", "/items/{id}"), messageHandler("item"))

	root := humadocs.New()
	root.Nest("/v1", sub)
	root.Mount(api)

	assert.Contains(t, api.OpenAPI().Paths, "/v1/items/{id}")
}

func TestRouter_mount_consumes_carrier(t *testing.T) {
	t.Parallel()

	first, _ := newTestAPI()
	second, _ := newTestAPI()

	r := humadocs.New()
	humadocs.Add(r, getOp("Get", "/once"), messageHandler("once"))

	r.Mount(first)
	r.Mount(second)

	assert.Contains(t, first.OpenAPI().Paths, "/once")
	assert.NotContains(t, second.OpenAPI().Paths, "/once")
}

func TestAddOutput_documents_and_serves(t *testing.T) {
	t.Parallel()

	api, mux := newTestAPI()

	r := humadocs.New()
	humadocs.AddOutput(r, huma.Operation{
		OperationID: "DeleteItem",
		Method:      http.MethodDelete,
		Path:        "/items/{id}",
	}, humadocs.NoContent{}, func(huma.Context) (humadocs.Output, error) {
		return humadocs.NoContent{}, nil
	}, humadocs.RouteInfo("Delete an item", "Always succeeds in this test."))
	r.Mount(api)

	op := api.OpenAPI().Paths["/items/{id}"].Delete
	require.NotNil(t, op)
	assert.Equal(t, "Delete an item", op.Summary)
	require.Contains(t, op.Responses, "204")

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, srv.URL+"/items/42", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestAddOutput_headers_reach_the_wire(t *testing.T) {
	t.Parallel()

	api, mux := newTestAPI()

	r := humadocs.New()
	humadocs.AddOutput(r, getOp("Hello", "/hello"), humadocs.Text(""), func(huma.Context) (humadocs.Output, error) {
		return humadocs.WithHeaders{
			Header: http.Header{
				"Content-Type": []string{"text/plain"},
				"X-Request-Id": []string{"abc"},
			},
			Inner: humadocs.Text("hi"),
		}, nil
	})
	r.Mount(api)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/hello", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc", resp.Header.Get("X-Request-Id"))
	// The wrapper's Content-Type replaces the inner octet-stream one.
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
}

func TestAddOutput_error_status(t *testing.T) {
	t.Parallel()

	api, mux := newTestAPI()

	r := humadocs.New()
	humadocs.AddOutput(r, getOp("Missing", "/missing"), humadocs.Text(""), func(huma.Context) (humadocs.Output, error) {
		return nil, huma.Error404NotFound("nothing here")
	})
	r.Mount(api)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/missing", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

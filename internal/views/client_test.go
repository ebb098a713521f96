package views

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, time.Second)
}

func TestHTTPClient_ListProjects_Envelope(t *testing.T) {
	c := serve(t, http.StatusOK, `{"status":"success","data":[{"id":1,"name":"Alpha","description":"x"}]}`)

	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Alpha", projects[0].Name)
}

func TestHTTPClient_ListProjects_Legacy(t *testing.T) {
	c := serve(t, http.StatusOK, ` [{"id":1,"name":"Alpha","description":"x"},{"id":2,"name":"Beta","description":"y"}]`)

	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestHTTPClient_ListProjects_LegacyErrorOn200(t *testing.T) {
	c := serve(t, http.StatusOK, `{"status":"error","error":"connection refused"}`)

	_, err := c.ListProjects(context.Background())
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "connection refused", upstream.Message)
}

func TestHTTPClient_ListProjects_ServerError(t *testing.T) {
	c := serve(t, http.StatusInternalServerError, `{"status":"error","message":"Failed to retrieve projects","error":"boom"}`)

	_, err := c.ListProjects(context.Background())
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
	assert.Equal(t, "Failed to retrieve projects", upstream.Message)
}

func TestHTTPClient_GetProject(t *testing.T) {
	c := serve(t, http.StatusOK, `{"status":"success","data":{"id":3,"name":"Gamma","description":"","summary":null,"start_date":"2023-01-15T00:00:00Z"}}`)

	view, err := c.GetProject(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), view.ID)
	assert.Nil(t, view.Summary)
	require.NotNil(t, view.StartDate)
	assert.Equal(t, "January 15, 2023", FormatDate(view.StartDate))
}

func TestHTTPClient_GetProject_Legacy(t *testing.T) {
	c := serve(t, http.StatusOK, `{"status":"success","project":{"id":3,"name":"Gamma","description":"d"}}`)

	view, err := c.GetProject(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Gamma", view.Name)
}

func TestHTTPClient_GetProject_NotFound(t *testing.T) {
	c := serve(t, http.StatusNotFound, `{"status":"error","message":"Project not found"}`)

	_, err := c.GetProject(context.Background(), "999")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
}

func TestHTTPClient_GetProject_EscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	_, err := NewHTTPClient(srv.URL, time.Second).GetProject(context.Background(), "a/b")
	require.Error(t, err)
	assert.Equal(t, "/api/projects/a%2Fb", gotPath)
}

func TestHTTPClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, time.Second).ListProjects(context.Background())
	require.Error(t, err)
	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream))
}

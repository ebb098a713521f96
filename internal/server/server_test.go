package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project_showcase/internal/config"
	"project_showcase/internal/models"
	"project_showcase/internal/services"
	"project_showcase/internal/views"
)

type stubService struct {
	projects []models.Project
	views    map[int64]*models.ProjectView
}

func (s *stubService) ListProjects(context.Context) ([]models.Project, error) {
	return s.projects, nil
}

func (s *stubService) GetProjectByID(_ context.Context, id int64) (*models.ProjectView, error) {
	if v, ok := s.views[id]; ok {
		return v, nil
	}
	return nil, services.ErrProjectNotFound
}

func startServer(t *testing.T, legacy bool) *httptest.Server {
	t.Helper()
	title := "Lead Engineer"
	svc := &stubService{
		projects: []models.Project{
			{ID: 1, Name: "Alpha", Description: "x"},
			{ID: 2, Name: "Beta", Description: "Alpha team"},
		},
		views: map[int64]*models.ProjectView{
			1: {ID: 1, Name: "Alpha", Description: "x", Title: &title},
		},
	}

	var handler http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		GinMode:            "test",
		LegacyResponses:    legacy,
		CORSAllowedOrigins: []string{"https://portfolio.example"},
	}
	handler = NewRouter(cfg, svc, views.NewHTTPClient(srv.URL, 2*time.Second))
	return srv
}

func fetch(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func getPath(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)
	return fetch(t, req)
}

func TestServer_Health(t *testing.T) {
	srv := startServer(t, false)
	resp, body := getPath(t, srv, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestServer_APIAndCORS(t *testing.T) {
	srv := startServer(t, false)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/projects/2", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://portfolio.example")
	resp, body := fetch(t, req)

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"status":"error","message":"Project not found"}`, body)
	assert.Equal(t, "https://portfolio.example", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_CORSPreflight(t *testing.T) {
	srv := startServer(t, false)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/projects", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://portfolio.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp, _ := fetch(t, req)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://portfolio.example", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_Pages(t *testing.T) {
	for _, legacy := range []bool{false, true} {
		srv := startServer(t, legacy)

		resp, body := getPath(t, srv, "/projects?q=alpha")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
		assert.Contains(t, body, "2 projects")

		_, body = getPath(t, srv, "/projects/1")
		assert.Contains(t, body, "Lead Engineer")
		assert.Contains(t, body, "N/A")

		_, body = getPath(t, srv, "/projects/abc")
		assert.Contains(t, body, "Project not found")
	}
}

func TestServer_CORSScopedToAPI(t *testing.T) {
	srv := startServer(t, false)

	for _, path := range []string{"/", "/projects", "/projects/1"} {
		req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://portfolio.example")
		resp, _ := fetch(t, req)

		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"), path)
	}
}

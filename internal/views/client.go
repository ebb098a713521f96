package views

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"project_showcase/internal/models"
	"time"
)

const maxResponseBytes = 4 << 20

// UpstreamError reports a non-2xx answer, or an error envelope, from the API.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api returned %d", e.StatusCode)
}

type APIClient interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (*models.ProjectView, error)
}

// HTTPClient fetches projects from the JSON API. It understands both the
// unified envelope and the legacy response shapes.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Project json.RawMessage `json:"project"`
}

func (c *HTTPClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	body, err := c.get(ctx, "/api/projects")
	if err != nil {
		return nil, err
	}

	projects := []models.Project{}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &projects); err != nil {
			return nil, fmt.Errorf("failed to decode projects: %w", err)
		}
		return projects, nil
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &projects); err != nil {
			return nil, fmt.Errorf("failed to decode projects: %w", err)
		}
	}
	return projects, nil
}

func (c *HTTPClient) GetProject(ctx context.Context, id string) (*models.ProjectView, error) {
	body, err := c.get(ctx, "/api/projects/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	raw := env.Data
	if len(raw) == 0 {
		raw = env.Project
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, &UpstreamError{StatusCode: http.StatusOK, Message: "empty project payload"}
	}

	var view models.ProjectView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}
	return &view, nil
}

func (c *HTTPClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		_ = json.Unmarshal(body, &env)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: env.message()}
	}

	return body, nil
}

// decodeEnvelope parses a JSON object response. An "error" status is
// reported as an UpstreamError even on a 2xx answer.
func decodeEnvelope(body []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if env.Status == "error" {
		return nil, &UpstreamError{StatusCode: http.StatusOK, Message: env.message()}
	}
	return &env, nil
}

func (e *envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

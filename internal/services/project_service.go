package services

import (
	"context"
	"errors"
	"math"
	"project_showcase/internal/models"
	"project_showcase/internal/repositories"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

// QueryError wraps any failure coming from the database layer.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	GetViewByID(ctx context.Context, id int64, join repositories.JoinStrategy) (*models.ProjectView, error)
}

type ProjectService struct {
	store        ProjectStore
	queryTimeout time.Duration
}

// NewProjectService builds the service. A zero queryTimeout leaves queries
// bounded only by the caller's context.
func NewProjectService(store ProjectStore, queryTimeout time.Duration) *ProjectService {
	return &ProjectService{
		store:        store,
		queryTimeout: queryTimeout,
	}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	projects, err := s.store.List(ctx)
	if err != nil {
		return nil, &QueryError{Op: "list projects", Err: err}
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id int64) (*models.ProjectView, error) {
	// projects.id is an int4; nothing outside that range can exist.
	if id < math.MinInt32 || id > math.MaxInt32 {
		return nil, ErrProjectNotFound
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	view, err := s.store.GetViewByID(ctx, id, repositories.JoinLeft)
	if err != nil {
		return nil, &QueryError{Op: "get project", Err: err}
	}
	if view == nil {
		return nil, ErrProjectNotFound
	}
	return view, nil
}

func (s *ProjectService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"project_showcase/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JoinStrategy selects how detail and role rows are joined onto a project.
type JoinStrategy int

const (
	// JoinLeft resolves a project even when it has no detail or role rows.
	JoinLeft JoinStrategy = iota
	// JoinInner only resolves projects that have both a detail and a role row.
	JoinInner
)

const listProjectsQuery = `
	SELECT id, COALESCE(name, ''), COALESCE(description, '')
	FROM projects
	ORDER BY id
`

const projectViewQuery = `
	SELECT p.id, COALESCE(p.name, ''), COALESCE(p.description, ''),
		d.summary, d.responsibilty, d.start_date, d.end_date,
		r.title
	FROM projects p
	%[1]s JOIN details d ON p.id = d.projects_id
	%[1]s JOIN roles r ON p.id = r.projects_id
	WHERE p.id = $1
	ORDER BY d.id, r.id
	LIMIT 1
`

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// List returns every project ordered by id.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, listProjectsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(&project.ID, &project.Name, &project.Description); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// GetViewByID returns the first joined row for the project, or nil when
// no row matches.
func (r *ProjectRepository) GetViewByID(ctx context.Context, id int64, join JoinStrategy) (*models.ProjectView, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	var view models.ProjectView
	err = conn.QueryRow(ctx, join.query(), id).Scan(
		&view.ID,
		&view.Name,
		&view.Description,
		&view.Summary,
		&view.Responsibilty,
		&view.StartDate,
		&view.EndDate,
		&view.Title,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &view, nil
}

func (j JoinStrategy) query() string {
	kind := "LEFT"
	if j == JoinInner {
		kind = "INNER"
	}
	return fmt.Sprintf(projectViewQuery, kind)
}

package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the showcase schema when it is missing. Production
// databases are managed out of band; this exists for local setups and tests.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		createProjectsTable,
		createDetailsTable,
		createRolesTable,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT
);
`

// responsibilty is misspelled in the live schema and kept that way.
const createDetailsTable = `
CREATE TABLE IF NOT EXISTS details (
  id SERIAL PRIMARY KEY,
  projects_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
  summary TEXT,
  responsibilty TEXT,
  start_date DATE,
  end_date DATE
);

CREATE INDEX IF NOT EXISTS idx_details_projects_id ON details(projects_id);
`

const createRolesTable = `
CREATE TABLE IF NOT EXISTS roles (
  id SERIAL PRIMARY KEY,
  projects_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
  title TEXT
);

CREATE INDEX IF NOT EXISTS idx_roles_projects_id ON roles(projects_id);
`

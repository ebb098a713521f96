package models

import "time"

// Project is a row of the projects table.
type Project struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectView is a project flattened with its detail and role columns.
// Columns from the joined tables are nil when no matching row exists.
type ProjectView struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Summary       *string    `json:"summary"`
	Responsibilty *string    `json:"responsibilty"` // column name as spelled in the schema
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Title         *string    `json:"title"`
}

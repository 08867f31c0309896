package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, title, description, image_url, link, tags, created_at`

func scanProject(row pgx.Row) (*Project, error) {
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Link, &p.Tags, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProjects retrieves all projects, newest first.
func (db *DB) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Link, &p.Tags, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProject retrieves a project by ID, or nil if it does not exist.
func (db *DB) GetProject(ctx context.Context, id int64) (*Project, error) {
	project, err := scanProject(db.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// CreateProject inserts a new project.
func (db *DB) CreateProject(ctx context.Context, in ProjectInput) (*Project, error) {
	if in.Tags == nil {
		in.Tags = []string{}
	}
	project, err := scanProject(db.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, image_url, link, tags)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+projectColumns,
		in.Title, in.Description, in.ImageURL, in.Link, in.Tags))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProject applies a partial update. Returns nil if the project does not exist.
func (db *DB) UpdateProject(ctx context.Context, id int64, patch ProjectPatch) (*Project, error) {
	query := `UPDATE projects SET id = id`
	args := []any{}
	argNum := 1

	if patch.Title != nil {
		query += fmt.Sprintf(", title = $%d", argNum)
		args = append(args, *patch.Title)
		argNum++
	}
	if patch.Description != nil {
		query += fmt.Sprintf(", description = $%d", argNum)
		args = append(args, *patch.Description)
		argNum++
	}
	if patch.ImageURL != nil {
		query += fmt.Sprintf(", image_url = $%d", argNum)
		args = append(args, *patch.ImageURL)
		argNum++
	}
	if patch.Link != nil {
		query += fmt.Sprintf(", link = $%d", argNum)
		args = append(args, *patch.Link)
		argNum++
	}
	if patch.Tags != nil {
		query += fmt.Sprintf(", tags = $%d", argNum)
		args = append(args, patch.Tags)
		argNum++
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING "+projectColumns, argNum)
	args = append(args, id)

	project, err := scanProject(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// DeleteProject deletes a project by ID. Returns false if no row matched.
func (db *DB) DeleteProject(ctx context.Context, id int64) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

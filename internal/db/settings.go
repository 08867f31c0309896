package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const settingsColumns = `id, github_url, linkedin_url, resume_url, email, updated_at`

func scanSettings(row pgx.Row) (*Settings, error) {
	var s Settings
	err := row.Scan(&s.ID, &s.GithubURL, &s.LinkedinURL, &s.ResumeURL, &s.Email, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSettings returns the settings row, or nil if none has been saved yet.
func (db *DB) GetSettings(ctx context.Context) (*Settings, error) {
	settings, err := scanSettings(db.pool.QueryRow(ctx,
		`SELECT `+settingsColumns+` FROM settings ORDER BY id LIMIT 1`))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings overwrites the settings row, creating it on first save.
func (db *DB) UpdateSettings(ctx context.Context, in SettingsInput) (*Settings, error) {
	existing, err := db.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	var row pgx.Row
	if existing == nil {
		row = db.pool.QueryRow(ctx,
			`INSERT INTO settings (github_url, linkedin_url, resume_url, email)
			 VALUES ($1, $2, $3, $4)
			 RETURNING `+settingsColumns,
			in.GithubURL, in.LinkedinURL, in.ResumeURL, in.Email)
	} else {
		row = db.pool.QueryRow(ctx,
			`UPDATE settings SET github_url = $1, linkedin_url = $2,
			        resume_url = $3, email = $4, updated_at = NOW()
			 WHERE id = $5
			 RETURNING `+settingsColumns,
			in.GithubURL, in.LinkedinURL, in.ResumeURL, in.Email, existing.ID)
	}

	settings, err := scanSettings(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

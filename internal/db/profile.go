package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, name, title, bio, email, github, linkedin, twitter`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.Email, &p.Github, &p.Linkedin, &p.Twitter)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfile returns the profile row, or nil if none has been saved yet.
func (db *DB) GetProfile(ctx context.Context) (*Profile, error) {
	profile, err := scanProfile(db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profile ORDER BY id LIMIT 1`))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile overwrites the profile row, creating it on first save.
func (db *DB) UpdateProfile(ctx context.Context, in ProfileInput) (*Profile, error) {
	existing, err := db.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	var row pgx.Row
	if existing == nil {
		row = db.pool.QueryRow(ctx,
			`INSERT INTO profile (name, title, bio, email, github, linkedin, twitter)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING `+profileColumns,
			in.Name, in.Title, in.Bio, in.Email, in.Github, in.Linkedin, in.Twitter)
	} else {
		row = db.pool.QueryRow(ctx,
			`UPDATE profile SET name = $1, title = $2, bio = $3, email = $4,
			        github = $5, linkedin = $6, twitter = $7
			 WHERE id = $8
			 RETURNING `+profileColumns,
			in.Name, in.Title, in.Bio, in.Email, in.Github, in.Linkedin, in.Twitter,
			existing.ID)
	}

	profile, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, name, google_id, avatar, is_allowed, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.GoogleID, &u.Avatar, &u.IsAllowed, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser retrieves a user by ID, or nil if it does not exist.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpsertGoogleUser records a verified Google sign-in, creating the user row
// on first login and refreshing name, Google subject and avatar after that.
// The caller has already checked the email against the allow-list.
func (db *DB) UpsertGoogleUser(ctx context.Context, email, name, googleID, avatar string) (*User, error) {
	var avatarPtr *string
	if avatar != "" {
		avatarPtr = &avatar
	}
	user, err := scanUser(db.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, google_id, avatar, is_allowed)
		 VALUES ($1, $2, $3, $4, TRUE)
		 ON CONFLICT (email) DO UPDATE SET
		     name = EXCLUDED.name,
		     google_id = EXCLUDED.google_id,
		     avatar = EXCLUDED.avatar,
		     is_allowed = TRUE
		 RETURNING `+userColumns,
		email, name, googleID, avatarPtr))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return user, nil
}

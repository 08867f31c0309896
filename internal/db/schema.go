package db

import (
	"context"
	"fmt"
)

// CreateSchema creates all tables needed by the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func (db *DB) CreateSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
-- Users (Google Sign-In identities; a single email is allow-listed)
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    email TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    google_id TEXT UNIQUE,
    avatar TEXT,
    is_allowed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Portfolio projects
CREATE TABLE IF NOT EXISTS projects (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    image_url TEXT NOT NULL,
    link TEXT NOT NULL,
    tags TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Profile (at most one row by convention)
CREATE TABLE IF NOT EXISTS profile (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    title TEXT NOT NULL,
    bio TEXT NOT NULL,
    email TEXT NOT NULL,
    github TEXT,
    linkedin TEXT,
    twitter TEXT
);

-- Skills; sort_order induces the display order
CREATE TABLE IF NOT EXISTS skills (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    level INTEGER NOT NULL CHECK (level >= 0 AND level <= 100),
    category TEXT NOT NULL DEFAULT 'Other',
    sort_order INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_skills_sort_order ON skills(sort_order);

-- Site settings (at most one row by convention)
CREATE TABLE IF NOT EXISTS settings (
    id SERIAL PRIMARY KEY,
    github_url TEXT,
    linkedin_url TEXT,
    resume_url TEXT,
    email TEXT,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Analytics aggregate: a true singleton row, id is pinned to 1 so that
-- concurrent first increments conflict instead of duplicating the row.
CREATE TABLE IF NOT EXISTS analytics (
    id INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
    total_views INTEGER NOT NULL DEFAULT 0,
    project_clicks INTEGER NOT NULL DEFAULT 0,
    contact_inquiries INTEGER NOT NULL DEFAULT 0,
    previous_month_views INTEGER NOT NULL DEFAULT 0,
    previous_month_clicks INTEGER NOT NULL DEFAULT 0,
    previous_month_inquiries INTEGER NOT NULL DEFAULT 0,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Daily view ledger, one row per calendar date (YYYY-MM-DD)
CREATE TABLE IF NOT EXISTS daily_views (
    id SERIAL PRIMARY KEY,
    date TEXT NOT NULL UNIQUE,
    views INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

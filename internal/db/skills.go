package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const skillColumns = `id, name, level, category, sort_order, created_at`

func scanSkill(row pgx.Row) (*Skill, error) {
	var s Skill
	err := row.Scan(&s.ID, &s.Name, &s.Level, &s.Category, &s.Order, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSkills retrieves all skills ordered by sort_order ascending.
func (db *DB) ListSkills(ctx context.Context) ([]Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+skillColumns+` FROM skills ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Level, &s.Category, &s.Order, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// GetSkill retrieves a skill by ID, or nil if it does not exist.
func (db *DB) GetSkill(ctx context.Context, id int64) (*Skill, error) {
	skill, err := scanSkill(db.pool.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return skill, nil
}

// CreateSkill inserts a new skill at the end of the collection. The sort
// order is computed inside the INSERT so two concurrent creates cannot read
// the same max; new skills always sort last (0 for an empty collection).
func (db *DB) CreateSkill(ctx context.Context, in SkillInput) (*Skill, error) {
	if in.Category == "" {
		in.Category = "Other"
	}
	skill, err := scanSkill(db.pool.QueryRow(ctx,
		`INSERT INTO skills (name, level, category, sort_order)
		 SELECT $1, $2, $3, COALESCE(MAX(sort_order) + 1, 0) FROM skills
		 RETURNING `+skillColumns,
		in.Name, in.Level, in.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

// UpdateSkill applies a partial update to a skill. Returns nil if the skill
// does not exist. The sort order is only ever changed by ReorderSkills.
func (db *DB) UpdateSkill(ctx context.Context, id int64, patch SkillPatch) (*Skill, error) {
	query := `UPDATE skills SET id = id`
	args := []any{}
	argNum := 1

	if patch.Name != nil {
		query += fmt.Sprintf(", name = $%d", argNum)
		args = append(args, *patch.Name)
		argNum++
	}
	if patch.Level != nil {
		query += fmt.Sprintf(", level = $%d", argNum)
		args = append(args, *patch.Level)
		argNum++
	}
	if patch.Category != nil {
		query += fmt.Sprintf(", category = $%d", argNum)
		args = append(args, *patch.Category)
		argNum++
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING "+skillColumns, argNum)
	args = append(args, id)

	skill, err := scanSkill(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

// DeleteSkill deletes a skill by ID. Returns false if no row matched.
func (db *DB) DeleteSkill(ctx context.Context, id int64) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete skill: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ReorderSkills persists skillIDs as the new canonical order: the skill at
// index i gets sort_order i. All updates run in one transaction, so a failed
// call leaves the previous order fully intact and readers never observe a
// half-applied order. IDs that match no row are silent no-ops; skills absent
// from skillIDs keep their previous sort_order.
func (db *DB) ReorderSkills(ctx context.Context, skillIDs []int64) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reorder transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for i, id := range skillIDs {
		if _, err := tx.Exec(ctx,
			`UPDATE skills SET sort_order = $1 WHERE id = $2`, i, id); err != nil {
			return fmt.Errorf("failed to reorder skill %d: %w", id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const analyticsColumns = `id, total_views, project_clicks, contact_inquiries,
	previous_month_views, previous_month_clicks, previous_month_inquiries, updated_at`

// dateLayout is the calendar-date key format of the daily_views ledger.
const dateLayout = "2006-01-02"

func scanAnalytics(row pgx.Row) (*Analytics, error) {
	var a Analytics
	err := row.Scan(&a.ID, &a.TotalViews, &a.ProjectClicks, &a.ContactInquiries,
		&a.PreviousMonthViews, &a.PreviousMonthClicks, &a.PreviousMonthInquiries,
		&a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAnalytics returns the aggregate singleton, creating a zeroed row on
// first access. The upsert makes concurrent first reads converge on one row.
func (db *DB) GetAnalytics(ctx context.Context) (*Analytics, error) {
	a, err := scanAnalytics(db.pool.QueryRow(ctx,
		`INSERT INTO analytics (id) VALUES (1)
		 ON CONFLICT (id) DO UPDATE SET id = analytics.id
		 RETURNING `+analyticsColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}
	return a, nil
}

// UpdateAnalytics applies a partial overwrite of the aggregate counters,
// including the previousMonth* snapshot fields. Nil fields keep their
// stored values. The row is created first if absent.
func (db *DB) UpdateAnalytics(ctx context.Context, patch AnalyticsPatch) (*Analytics, error) {
	if _, err := db.GetAnalytics(ctx); err != nil {
		return nil, err
	}

	query := `UPDATE analytics SET updated_at = NOW()`
	args := []any{}
	argNum := 1

	set := func(column string, value *int) {
		if value == nil {
			return
		}
		query += fmt.Sprintf(", %s = $%d", column, argNum)
		args = append(args, *value)
		argNum++
	}
	set("total_views", patch.TotalViews)
	set("project_clicks", patch.ProjectClicks)
	set("contact_inquiries", patch.ContactInquiries)
	set("previous_month_views", patch.PreviousMonthViews)
	set("previous_month_clicks", patch.PreviousMonthClicks)
	set("previous_month_inquiries", patch.PreviousMonthInquiries)

	query += ` WHERE id = 1 RETURNING ` + analyticsColumns

	a, err := scanAnalytics(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update analytics: %w", err)
	}
	return a, nil
}

// incrementCounter bumps one aggregate counter by 1 in a single statement.
// The upsert creates the singleton already reflecting the increment, so N
// concurrent calls serialize on the row and never lose an update or insert
// a duplicate.
func (db *DB) incrementCounter(ctx context.Context, column string) (*Analytics, error) {
	query := fmt.Sprintf(
		`INSERT INTO analytics (id, %[1]s) VALUES (1, 1)
		 ON CONFLICT (id) DO UPDATE SET %[1]s = analytics.%[1]s + 1, updated_at = NOW()
		 RETURNING `+analyticsColumns, column)
	a, err := scanAnalytics(db.pool.QueryRow(ctx, query))
	if err != nil {
		return nil, fmt.Errorf("failed to increment %s: %w", column, err)
	}
	return a, nil
}

// IncrementView records one page view: total_views on the aggregate plus the
// ledger row for today's UTC date. Both upserts run in one transaction, so a
// failed call leaves neither counter bumped.
func (db *DB) IncrementView(ctx context.Context) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin view transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx,
		`INSERT INTO analytics (id, total_views) VALUES (1, 1)
		 ON CONFLICT (id) DO UPDATE SET total_views = analytics.total_views + 1, updated_at = NOW()`); err != nil {
		return fmt.Errorf("failed to increment total views: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO daily_views (date, views) VALUES ($1, 1)
		 ON CONFLICT (date) DO UPDATE SET views = daily_views.views + 1`,
		time.Now().UTC().Format(dateLayout)); err != nil {
		return fmt.Errorf("failed to increment daily views: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit view increment: %w", err)
	}
	return nil
}

// IncrementProjectClick bumps project_clicks and returns the updated aggregate.
func (db *DB) IncrementProjectClick(ctx context.Context) (*Analytics, error) {
	return db.incrementCounter(ctx, "project_clicks")
}

// IncrementContactInquiry bumps contact_inquiries and returns the updated aggregate.
func (db *DB) IncrementContactInquiry(ctx context.Context) (*Analytics, error) {
	return db.incrementCounter(ctx, "contact_inquiries")
}

// ListDailyViews returns the ledger rows for the most recent `days` dates in
// ascending date order, oldest first, ready for chart consumers.
func (db *DB) ListDailyViews(ctx context.Context, days int) ([]DailyViews, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, date, views, created_at FROM daily_views
		 ORDER BY date DESC LIMIT $1`, days)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily views: %w", err)
	}
	defer rows.Close()

	var views []DailyViews
	for rows.Next() {
		var d DailyViews
		if err := rows.Scan(&d.ID, &d.Date, &d.Views, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily views: %w", err)
		}
		views = append(views, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Fetched newest-first for the LIMIT; callers want oldest-first.
	for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
		views[i], views[j] = views[j], views[i]
	}
	return views, nil
}

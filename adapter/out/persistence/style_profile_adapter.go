package persistence

import (
	"context"
	"time"

	"style_server/core/domain"
	"style_server/core/port/out"

	"github.com/jmoiron/sqlx"
)

// StyleProfileAdapter implements out.StyleProfileRepository
type StyleProfileAdapter struct {
	db *sqlx.DB
}

// NewStyleProfileAdapter creates a new StyleProfileAdapter
func NewStyleProfileAdapter(db *sqlx.DB) *StyleProfileAdapter {
	return &StyleProfileAdapter{db: db}
}

var _ out.StyleProfileRepository = (*StyleProfileAdapter)(nil)

type stylePreferenceRow struct {
	StyleName  string  `db:"style_name"`
	Percentage float64 `db:"percentage"`
}

func (a *StyleProfileAdapter) ListByUser(ctx context.Context, userID int64) ([]domain.StylePreference, error) {
	query := a.db.Rebind(`
		SELECT style_name, percentage
		FROM style_preferences
		WHERE user_id = ?
		ORDER BY percentage DESC, style_name ASC`)

	var rows []stylePreferenceRow
	if err := a.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	prefs := make([]domain.StylePreference, len(rows))
	for i, r := range rows {
		prefs[i] = domain.StylePreference{StyleName: r.StyleName, Percentage: r.Percentage}
	}
	return prefs, nil
}

// Replace deletes the user's rows and inserts prefs inside one transaction.
// Any failure rolls the whole replace back.
func (a *StyleProfileAdapter) Replace(ctx context.Context, userID int64, prefs []domain.StylePreference) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM style_preferences WHERE user_id = ?`), userID); err != nil {
		return err
	}

	insert := tx.Rebind(`
		INSERT INTO style_preferences (user_id, style_name, percentage, created_at)
		VALUES (?, ?, ?, ?)`)
	now := time.Now().UTC()
	for _, p := range prefs {
		if _, err := tx.ExecContext(ctx, insert, userID, p.StyleName, p.Percentage, now); err != nil {
			return mapError(err)
		}
	}

	return tx.Commit()
}

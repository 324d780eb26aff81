package persistence

import (
	"context"
	"time"

	"style_server/core/domain"
	"style_server/core/port/out"

	"github.com/jmoiron/sqlx"
)

// ColorPaletteAdapter implements out.ColorPaletteRepository on the
// fixed-arity color_palette_matching table.
type ColorPaletteAdapter struct {
	db *sqlx.DB
}

func NewColorPaletteAdapter(db *sqlx.DB) *ColorPaletteAdapter {
	return &ColorPaletteAdapter{db: db}
}

var _ out.ColorPaletteRepository = (*ColorPaletteAdapter)(nil)

type colorPaletteRow struct {
	UserID           int64     `db:"user_id"`
	Color1           string    `db:"color_1"`
	Color1Percentage float64   `db:"color_1_percentage"`
	Color2           string    `db:"color_2"`
	Color2Percentage float64   `db:"color_2_percentage"`
	Color3           string    `db:"color_3"`
	Color3Percentage float64   `db:"color_3_percentage"`
	Color4           string    `db:"color_4"`
	Color4Percentage float64   `db:"color_4_percentage"`
	CreatedAt        time.Time `db:"created_at"`
}

func (r *colorPaletteRow) toDomain() *domain.ColorPalette {
	return &domain.ColorPalette{
		UserID: r.UserID,
		Colors: [domain.PaletteSize]domain.ColorShare{
			{Color: r.Color1, Percentage: r.Color1Percentage},
			{Color: r.Color2, Percentage: r.Color2Percentage},
			{Color: r.Color3, Percentage: r.Color3Percentage},
			{Color: r.Color4, Percentage: r.Color4Percentage},
		},
		CreatedAt: r.CreatedAt,
	}
}

func (a *ColorPaletteAdapter) GetByUser(ctx context.Context, userID int64) (*domain.ColorPalette, error) {
	query := a.db.Rebind(`
		SELECT user_id,
			color_1, color_1_percentage, color_2, color_2_percentage,
			color_3, color_3_percentage, color_4, color_4_percentage,
			created_at
		FROM color_palette_matching
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT 1`)

	var row colorPaletteRow
	if err := a.db.GetContext(ctx, &row, query, userID); err != nil {
		return nil, mapError(err)
	}
	return row.toDomain(), nil
}

// Replace swaps the user's palette. Sets palette.CreatedAt on success.
func (a *ColorPaletteAdapter) Replace(ctx context.Context, palette *domain.ColorPalette) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM color_palette_matching WHERE user_id = ?`), palette.UserID); err != nil {
		return err
	}

	now := time.Now().UTC()
	c := palette.Colors
	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO color_palette_matching (
			user_id,
			color_1, color_1_percentage, color_2, color_2_percentage,
			color_3, color_3_percentage, color_4, color_4_percentage,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		palette.UserID,
		c[0].Color, c[0].Percentage, c[1].Color, c[1].Percentage,
		c[2].Color, c[2].Percentage, c[3].Color, c[3].Percentage,
		now,
	)
	if err != nil {
		return mapError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	palette.CreatedAt = now
	return nil
}

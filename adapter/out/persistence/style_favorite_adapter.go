package persistence

import (
	"context"
	"time"

	"style_server/core/domain"
	"style_server/core/port/out"

	"github.com/jmoiron/sqlx"
)

// FavoriteAdapter implements out.FavoriteRepository
type FavoriteAdapter struct {
	db *sqlx.DB
}

func NewFavoriteAdapter(db *sqlx.DB) *FavoriteAdapter {
	return &FavoriteAdapter{db: db}
}

var _ out.FavoriteRepository = (*FavoriteAdapter)(nil)

type favoriteRow struct {
	ID       int64     `db:"id"`
	UserID   int64     `db:"user_id"`
	ItemName string    `db:"item_name"`
	ItemType string    `db:"item_type"`
	Link     string    `db:"link"`
	AddedAt  time.Time `db:"added_at"`
}

func (a *FavoriteAdapter) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	query := a.db.Rebind(`
		SELECT id, user_id, item_name, item_type, link, added_at
		FROM favorites
		WHERE user_id = ?
		ORDER BY added_at DESC, id DESC`)

	var rows []favoriteRow
	if err := a.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	favs := make([]domain.Favorite, len(rows))
	for i, r := range rows {
		favs[i] = domain.Favorite{
			ID:       r.ID,
			UserID:   r.UserID,
			ItemName: r.ItemName,
			ItemType: r.ItemType,
			Link:     r.Link,
			AddedAt:  r.AddedAt,
		}
	}
	return favs, nil
}

func (a *FavoriteAdapter) Create(ctx context.Context, fav *domain.Favorite) error {
	fav.AddedAt = time.Now().UTC()

	id, err := insertReturningID(ctx, a.db, `
		INSERT INTO favorites (user_id, item_name, item_type, link, added_at)
		VALUES (?, ?, ?, ?, ?)`,
		fav.UserID, fav.ItemName, fav.ItemType, fav.Link, fav.AddedAt,
	)
	if err != nil {
		return mapError(err)
	}

	fav.ID = id
	return nil
}

func (a *FavoriteAdapter) Delete(ctx context.Context, userID, favoriteID int64) error {
	res, err := a.db.ExecContext(ctx, a.db.Rebind(`DELETE FROM favorites WHERE id = ? AND user_id = ?`), favoriteID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package out

import (
	"context"

	"style_server/core/domain"
)

// StyleProfileRepository defines the outbound port for style preferences.
type StyleProfileRepository interface {
	// ListByUser returns stored preferences sorted by percentage descending.
	// A user without rows yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID int64) ([]domain.StylePreference, error)

	// Replace deletes every row of the user and inserts prefs in one
	// transaction. On failure the previous rows are left untouched.
	Replace(ctx context.Context, userID int64, prefs []domain.StylePreference) error
}

// ColorPaletteRepository defines the outbound port for color palettes.
type ColorPaletteRepository interface {
	// GetByUser returns domain.ErrNotFound when the user has no palette.
	GetByUser(ctx context.Context, userID int64) (*domain.ColorPalette, error)

	// Replace swaps the user's palette row transactionally.
	Replace(ctx context.Context, palette *domain.ColorPalette) error
}

// ChatHistoryRepository is the append-only chat log.
type ChatHistoryRepository interface {
	Append(ctx context.Context, exchange *domain.ChatExchange) error

	// ListByUser returns at most limit exchanges, newest first.
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.ChatExchange, error)
}

// FavoriteRepository stores bookmarked items.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)

	// Create fills ID and AddedAt. Returns domain.ErrDuplicate when the user
	// already saved an item with the same name.
	Create(ctx context.Context, fav *domain.Favorite) error

	// Delete returns domain.ErrNotFound when nothing matched.
	Delete(ctx context.Context, userID, favoriteID int64) error
}

// CatalogRepository is the SQL-backed recommendation catalog.
type CatalogRepository interface {
	CatalogSource

	// ReplaceAll swaps the whole catalog in one transaction.
	ReplaceAll(ctx context.Context, entries []domain.RecommendationEntry) error
}

// CatalogSource yields catalog rows in load order.
type CatalogSource interface {
	LoadEntries(ctx context.Context) ([]domain.RecommendationEntry, error)
}

// ProductRepository stores the product catalog. Every list is ordered by id.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID returns domain.ErrNotFound when no product has id.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// ListByStyle and ListByColor match case-insensitively.
	ListByStyle(ctx context.Context, style string) ([]domain.Product, error)
	ListByColor(ctx context.Context, color string) ([]domain.Product, error)

	// ReplaceAll swaps the whole catalog in one transaction and fills the
	// ids of products.
	ReplaceAll(ctx context.Context, products []domain.Product) error
}

package in

import (
	"context"

	"style_server/core/domain"
)

// RecommendationService resolves categories into recommendation variants.
type RecommendationService interface {
	// Recommend validates the pair and returns its variants.
	// Errors: apperr INVALID_CATEGORY, NOT_FOUND.
	Recommend(ctx context.Context, clothingType, color string) (*domain.RecommendationSet, error)
	RecommendBySlug(ctx context.Context, slug string) (*domain.RecommendationSet, error)
	Categories() []domain.Category

	// CatalogStatus reports whether the catalog was published and its size.
	CatalogStatus() (loaded bool, entries int)
}

// ProfileService manages style profiles and color palettes.
type ProfileService interface {
	GetStyleProfile(ctx context.Context, userID int64) ([]domain.StylePreference, error)
	ReplaceStyleProfile(ctx context.Context, userID int64, prefs []domain.StylePreference) error

	GetColorPalette(ctx context.Context, userID int64) (*domain.ColorPalette, error)
	ReplaceColorPalette(ctx context.Context, palette *domain.ColorPalette) error
}

// ChatService answers fashion questions using stored preferences.
type ChatService interface {
	// SendMessage never fails because of the text generator; it degrades to
	// a fixed apology instead.
	SendMessage(ctx context.Context, userID int64, message string) (*domain.ChatReply, error)
	History(ctx context.Context, userID int64, limit int) ([]domain.ChatExchange, error)

	// SaveExchange stores an exchange produced elsewhere. Fills ID and
	// Timestamp.
	SaveExchange(ctx context.Context, exchange *domain.ChatExchange) error
}

// FavoriteService manages bookmarked items.
type FavoriteService interface {
	ListFavorites(ctx context.Context, userID int64) ([]domain.Favorite, error)
	AddFavorite(ctx context.Context, fav *domain.Favorite) error
	RemoveFavorite(ctx context.Context, userID, favoriteID int64) error
}

// ProductService serves the read-only product catalog.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ProductsByStyle(ctx context.Context, style string) ([]domain.Product, error)
	ProductsByColor(ctx context.Context, color string) ([]domain.Product, error)
}

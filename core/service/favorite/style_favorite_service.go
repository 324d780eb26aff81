package favorite

import (
	"context"
	"errors"
	"strings"

	"style_server/core/domain"
	"style_server/core/port/out"
	"style_server/pkg/apperr"
)

// Service implements in.FavoriteService
type Service struct {
	repo out.FavoriteRepository
}

// NewService creates a new FavoriteService
func NewService(repo out.FavoriteRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListFavorites(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	favs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.PersistenceFailure("Error fetching favorites", err)
	}
	return favs, nil
}

func (s *Service) AddFavorite(ctx context.Context, fav *domain.Favorite) error {
	fav.ItemName = strings.TrimSpace(fav.ItemName)
	fav.ItemType = strings.TrimSpace(fav.ItemType)
	if fav.ItemName == "" {
		return apperr.MissingField("item_name")
	}

	err := s.repo.Create(ctx, fav)
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return apperr.AlreadyExists("Favorite")
	case err != nil:
		return apperr.PersistenceFailure("Error adding favorite", err)
	}
	return nil
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, favoriteID int64) error {
	err := s.repo.Delete(ctx, userID, favoriteID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperr.NotFound("Favorite not found")
	case err != nil:
		return apperr.PersistenceFailure("Error removing favorite", err)
	}
	return nil
}

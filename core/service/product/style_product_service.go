package product

import (
	"context"
	"errors"
	"strings"

	"style_server/core/domain"
	"style_server/core/port/out"
	"style_server/pkg/apperr"
)

// Service implements in.ProductService
type Service struct {
	repo out.ProductRepository
}

// NewService creates a new ProductService
func NewService(repo out.ProductRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.PersistenceFailure("Error fetching products", err)
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, apperr.NotFound("Product not found")
	case err != nil:
		return nil, apperr.PersistenceFailure("Error fetching product", err)
	}
	return p, nil
}

func (s *Service) ProductsByStyle(ctx context.Context, style string) ([]domain.Product, error) {
	style = strings.TrimSpace(style)
	if style == "" {
		return nil, apperr.MissingField("style")
	}
	products, err := s.repo.ListByStyle(ctx, style)
	if err != nil {
		return nil, apperr.PersistenceFailure("Error fetching products by style", err)
	}
	return products, nil
}

func (s *Service) ProductsByColor(ctx context.Context, color string) ([]domain.Product, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return nil, apperr.MissingField("color")
	}
	products, err := s.repo.ListByColor(ctx, color)
	if err != nil {
		return nil, apperr.PersistenceFailure("Error fetching products by color", err)
	}
	return products, nil
}

package recommendation

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"style_server/core/domain"
	"style_server/core/port/out"
	"style_server/pkg/apperr"
	"style_server/pkg/logger"
)

const msgNoRecommendations = "No recommendations found"

// Service resolves categories against the published catalog.
//
// The catalog starts empty and is swapped in once by Load or Publish.
// Lookups before that see no rows and report NOT_FOUND.
type Service struct {
	catalog    atomic.Pointer[domain.Catalog]
	confidence domain.ConfidenceTable
}

// NewService creates a Service. A nil confidence table uses the defaults.
func NewService(confidence domain.ConfidenceTable) *Service {
	if confidence == nil {
		confidence = domain.DefaultConfidenceTable()
	}
	return &Service{confidence: confidence}
}

// Publish installs c as the active catalog.
func (s *Service) Publish(c *domain.Catalog) {
	s.catalog.Store(c)
}

// Load reads every row from src and publishes the grouped catalog.
func (s *Service) Load(ctx context.Context, src out.CatalogSource) error {
	start := time.Now()

	entries, err := src.LoadEntries(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	c := domain.NewCatalog(entries)
	s.Publish(c)

	logger.WithFields(map[string]any{
		"rows":    len(entries),
		"entries": c.Len(),
	}).WithDuration(time.Since(start)).Info("recommendation catalog loaded")
	return nil
}

// CatalogStatus reports whether a catalog was published and its size.
func (s *Service) CatalogStatus() (bool, int) {
	c := s.catalog.Load()
	return c != nil, c.Len()
}

// Categories returns the allow-listed categories.
func (s *Service) Categories() []domain.Category {
	return domain.AllowedCategories()
}

// Recommend validates the (type, color) pair and resolves its variants.
func (s *Service) Recommend(ctx context.Context, clothingType, color string) (*domain.RecommendationSet, error) {
	category, err := domain.ResolveCategory(clothingType, color)
	if err != nil {
		return nil, apperr.InvalidCategory(domain.ValidCategoryPairs())
	}
	return s.resolve(category.Key())
}

// RecommendBySlug resolves an allow-listed category by URL slug.
func (s *Service) RecommendBySlug(ctx context.Context, slug string) (*domain.RecommendationSet, error) {
	category, ok := domain.CategoryBySlug(slug)
	if !ok {
		return nil, apperr.NotFound(fmt.Sprintf("Unknown category: %s", slug))
	}
	return s.resolve(category.Key())
}

func (s *Service) resolve(key string) (*domain.RecommendationSet, error) {
	entries := s.catalog.Load().Lookup(key)
	if len(entries) == 0 {
		return nil, apperr.NotFound(msgNoRecommendations)
	}

	set := &domain.RecommendationSet{
		Recommendations:  make(map[domain.VariantType]domain.Recommendation, len(entries)),
		OriginalCategory: key,
	}
	for variant, e := range entries {
		set.Recommendations[variant] = domain.Recommendation{
			Item:            e.ItemName,
			Link:            e.Link,
			MatchConfidence: s.confidence[variant],
		}
	}
	return set, nil
}

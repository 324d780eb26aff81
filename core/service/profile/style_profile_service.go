package profile

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"style_server/core/domain"
	"style_server/core/port/out"
	"style_server/pkg/apperr"
	"style_server/pkg/logger"
)

// Config tunes the profile service.
type Config struct {
	// CacheTTL is how long reads stay cached. Zero disables caching.
	CacheTTL time.Duration

	// RequireFullSum rejects style profiles whose percentages do not add up
	// to 100.
	RequireFullSum bool
}

// cacheStripes is the number of generation counters guarding cache fills.
const cacheStripes = 64

// Service implements in.ProfileService.
//
// Reads fill the cache only if no replace of the same key started since the
// read began. Each replace bumps the key's generation before and after the
// write, so a reader that saw pre-commit rows never writes them back.
// Replicas do not share generations; across instances a stale fill can
// survive for at most CacheTTL.
type Service struct {
	styles   out.StyleProfileRepository
	palettes out.ColorPaletteRepository
	cache    out.Cache
	cfg      Config

	mu   sync.Mutex
	gens [cacheStripes]uint64
}

// NewService creates a Service. cache may be nil.
func NewService(styles out.StyleProfileRepository, palettes out.ColorPaletteRepository, cache out.Cache, cfg Config) *Service {
	return &Service{
		styles:   styles,
		palettes: palettes,
		cache:    cache,
		cfg:      cfg,
	}
}

func styleCacheKey(userID int64) string   { return fmt.Sprintf("styles:%d", userID) }
func paletteCacheKey(userID int64) string { return fmt.Sprintf("palette:%d", userID) }

// =============================================================================
// Style profile
// =============================================================================

// GetStyleProfile returns the stored profile sorted by percentage
// descending, or the default profile when the user has none.
func (s *Service) GetStyleProfile(ctx context.Context, userID int64) ([]domain.StylePreference, error) {
	var cached []domain.StylePreference
	if s.cacheGet(ctx, styleCacheKey(userID), &cached) {
		return cached, nil
	}

	key := styleCacheKey(userID)
	gen := s.generation(key)

	prefs, err := s.styles.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.PersistenceFailure("Failed to fetch style profile", err)
	}
	if len(prefs) == 0 {
		return domain.DefaultStyleProfile(), nil
	}

	domain.SortStyleProfile(prefs)
	s.cacheSet(ctx, key, gen, prefs)
	return prefs, nil
}

// ReplaceStyleProfile swaps the user's whole profile. Nothing is written
// unless every entry validates.
func (s *Service) ReplaceStyleProfile(ctx context.Context, userID int64, prefs []domain.StylePreference) error {
	prefs = append([]domain.StylePreference(nil), prefs...)
	if err := domain.ValidateStyleProfile(prefs, s.cfg.RequireFullSum); err != nil {
		return apperr.ValidationFailed(err.Error()).WithError(err)
	}

	key := styleCacheKey(userID)
	s.invalidate(ctx, key)
	defer s.invalidate(ctx, key)

	if err := s.styles.Replace(ctx, userID, prefs); err != nil {
		return apperr.PersistenceFailure("Failed to update style profile", err)
	}
	return nil
}

// =============================================================================
// Color palette
// =============================================================================

// GetColorPalette returns the user's palette. There is no default palette.
func (s *Service) GetColorPalette(ctx context.Context, userID int64) (*domain.ColorPalette, error) {
	var cached domain.ColorPalette
	if s.cacheGet(ctx, paletteCacheKey(userID), &cached) {
		return &cached, nil
	}

	key := paletteCacheKey(userID)
	gen := s.generation(key)

	palette, err := s.palettes.GetByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Color palette not found")
	}
	if err != nil {
		return nil, apperr.PersistenceFailure("Failed to fetch color palette", err)
	}

	s.cacheSet(ctx, key, gen, palette)
	return palette, nil
}

// ReplaceColorPalette validates and stores a new palette for the user.
func (s *Service) ReplaceColorPalette(ctx context.Context, palette *domain.ColorPalette) error {
	if palette == nil {
		return apperr.BadRequest("palette is required")
	}
	if err := palette.Validate(); err != nil {
		return apperr.ValidationFailed(err.Error()).WithError(err)
	}

	key := paletteCacheKey(palette.UserID)
	s.invalidate(ctx, key)
	defer s.invalidate(ctx, key)

	if err := s.palettes.Replace(ctx, palette); err != nil {
		return apperr.PersistenceFailure("Failed to update color palette", err)
	}
	return nil
}

// =============================================================================
// Cache helpers (best effort)
// =============================================================================

func (s *Service) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("profile cache read failed: %s", key)
		return false
	}
	return hit
}

func stripe(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % cacheStripes)
}

func (s *Service) generation(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[stripe(key)]
}

// cacheSet stores value unless key was replaced after gen was taken.
func (s *Service) cacheSet(ctx context.Context, key string, gen uint64, value any) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[stripe(key)] != gen {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.cfg.CacheTTL); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("profile cache write failed: %s", key)
	}
}

func (s *Service) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[stripe(key)]++
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("profile cache invalidation failed: %s", key)
	}
}

package out

import (
	"context"
	"time"
)

// Cache defines the outbound port for caching JSON-encodable values.
type Cache interface {
	// GetJSON decodes into dest. A miss returns (false, nil).
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

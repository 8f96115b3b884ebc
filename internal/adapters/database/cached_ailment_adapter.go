package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/providers"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/repositories"
)

// Default cache TTL (in seconds) for ailment reads
const defaultAilmentCacheTTL = 300

// Cache key generators
func ailmentCacheKey(id string) string {
	return fmt.Sprintf("ailment:%s", id)
}

const (
	ailmentCachePattern  = "ailment:*"
	ailmentsListCacheKey = "ailments:all"
)

// CachedAilmentAdapter wraps an ailment repository with a read-through cache.
// The cache is advisory: any cache failure is treated as a miss and the call
// falls through to the backing store.
type CachedAilmentAdapter struct {
	adapter    repositories.AilmentRepository
	cache      providers.CacheProvider
	ttlSeconds int
}

// NewCachedAilmentAdapter creates a new cached ailment adapter. A
// non-positive ttlSeconds falls back to the default TTL.
func NewCachedAilmentAdapter(adapter repositories.AilmentRepository, cache providers.CacheProvider, ttlSeconds int) repositories.AilmentRepository {
	if ttlSeconds <= 0 {
		ttlSeconds = defaultAilmentCacheTTL
	}
	return &CachedAilmentAdapter{
		adapter:    adapter,
		cache:      cache,
		ttlSeconds: ttlSeconds,
	}
}

// Get retrieves an aggregate by id with caching
func (a *CachedAilmentAdapter) Get(ctx context.Context, id string) (*entities.Ailment, error) {
	cacheKey := ailmentCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var ailment entities.Ailment
		if err := json.Unmarshal(cached, &ailment); err == nil {
			return &ailment, nil
		}
		log.Warn().Err(err).Str("ailment_id", id).Msg("Failed to unmarshal cached ailment")
	}

	ailment, err := a.adapter.Get(ctx, id)
	if err != nil || ailment == nil {
		return ailment, err
	}

	if data, err := json.Marshal(ailment); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, a.ttlSeconds); err != nil {
			log.Warn().Err(err).Str("ailment_id", id).Msg("Failed to cache ailment")
		}
	}

	return ailment, nil
}

// Put stores the aggregate and invalidates stale cache entries
func (a *CachedAilmentAdapter) Put(ctx context.Context, ailment entities.Ailment) error {
	if err := a.adapter.Put(ctx, ailment); err != nil {
		return err
	}
	a.invalidate(ctx, ailment.ID)
	return nil
}

// Delete removes the aggregate and invalidates stale cache entries
func (a *CachedAilmentAdapter) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := a.adapter.Delete(ctx, id)
	if err != nil {
		return deleted, err
	}
	if deleted {
		a.invalidate(ctx, id)
	}
	return deleted, nil
}

// Scan returns every stored aggregate with list caching
func (a *CachedAilmentAdapter) Scan(ctx context.Context) ([]entities.Ailment, error) {
	if cached, err := a.cache.Get(ctx, ailmentsListCacheKey); err == nil {
		var ailments []entities.Ailment
		if err := json.Unmarshal(cached, &ailments); err == nil {
			return ailments, nil
		}
		log.Warn().Err(err).Msg("Failed to unmarshal cached ailment list")
	}

	ailments, err := a.adapter.Scan(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(ailments); err == nil {
		if err := a.cache.Set(ctx, ailmentsListCacheKey, data, a.ttlSeconds); err != nil {
			log.Warn().Err(err).Msg("Failed to cache ailment list")
		}
	}

	return ailments, nil
}

// invalidate drops every per-id entry and the list entry
func (a *CachedAilmentAdapter) invalidate(ctx context.Context, id string) {
	if err := a.cache.DeletePattern(ctx, ailmentCachePattern); err != nil {
		log.Warn().Err(err).Str("ailment_id", id).Msg("Failed to invalidate ailment cache")
	}
	if err := a.cache.Delete(ctx, ailmentsListCacheKey); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate ailment list cache")
	}
}

package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/storefront/internal/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// CachedProductRepository caches catalog responses in Redis, keyed by request identity, and
// collapses concurrent fetches of the same key into one upstream call. Errors are never cached.
// With a nil Redis client only the de-duplication applies.
type CachedProductRepository struct {
	next    ProductRepository
	rdb     *redis.Client
	baseTTL time.Duration
	sfg     singleflight.Group
}

func NewCachedProductRepository(next ProductRepository, rdb *redis.Client, ttl time.Duration) *CachedProductRepository {
	return &CachedProductRepository{
		next:    next,
		rdb:     rdb,
		baseTTL: ttl,
	}
}

func (r *CachedProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return cached(ctx, r, "catalog:products", r.next.GetAll)
}

func (r *CachedProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	return cached(ctx, r, fmt.Sprintf("catalog:product:%d", id), func(ctx context.Context) (models.Product, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *CachedProductRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return cached(ctx, r, "catalog:category:"+category, func(ctx context.Context) ([]models.Product, error) {
		return r.next.GetByCategory(ctx, category)
	})
}

func (r *CachedProductRepository) GetCategories(ctx context.Context) ([]string, error) {
	return cached(ctx, r, "catalog:categories", r.next.GetCategories)
}

// cached serves key from Redis or a shared upstream fetch. The fetch is detached from the
// cancellation of whichever caller started it; each caller still stops waiting when its own ctx
// is done.
func cached[T any](ctx context.Context, r *CachedProductRepository, key string, fetch func(context.Context) (T, error)) (T, error) {
	ch := r.sfg.DoChan(key, func() (any, error) {
		fetchCtx := context.WithoutCancel(ctx)
		if hit, ok := r.lookup(fetchCtx, key); ok {
			var value T
			err := json.Unmarshal(hit, &value)
			if err == nil {
				return value, nil
			}
			log.Printf("cache decode error for %s: %v", key, err)
		}

		value, err := fetch(fetchCtx)
		if err != nil {
			return value, err
		}
		r.store(fetchCtx, key, value)
		return value, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func (r *CachedProductRepository) lookup(ctx context.Context, key string) ([]byte, bool) {
	if r.rdb == nil {
		return nil, false
	}
	data, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Printf("cache get error for %s: %v", key, err)
		return nil, false
	}
	return data, true
}

func (r *CachedProductRepository) store(ctx context.Context, key string, value any) {
	if r.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache encode error for %s: %v", key, err)
		return
	}

	jitter := time.Duration(rand.Int63n(int64(r.baseTTL/5) + 1))
	if err := r.rdb.Set(ctx, key, data, r.baseTTL+jitter).Err(); err != nil {
		log.Printf("cache set error for %s: %v", key, err)
	}
}

// Invalidate drops every cached catalog response.
func (r *CachedProductRepository) Invalidate(ctx context.Context) error {
	if r.rdb == nil {
		return nil
	}
	iter := r.rdb.Scan(ctx, 0, "catalog:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.Wrap(err, "redis delete failed")
		}
	}
	return errors.Wrap(iter.Err(), "redis scan failed")
}

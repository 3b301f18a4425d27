package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"medpipeline/internal/config"
)

const productCatalogKey = "medpipeline:products"

// ProductCatalogCache keeps the last successfully loaded product list in
// Redis so the dashboard can populate product choices while the remote sheet
// is unreachable.
type ProductCatalogCache struct {
	rdb *redis.Client
}

// NewProductCatalogCache returns nil when no Redis address is configured; the
// catalog then skips straight from the remote sheet to the built-in defaults.
func NewProductCatalogCache(cfg config.RedisConfig) *ProductCatalogCache {
	if cfg.Addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &ProductCatalogCache{rdb: rdb}
}

func (c *ProductCatalogCache) GetProducts(ctx context.Context) ([]string, error) {
	raw, err := c.rdb.Get(ctx, productCatalogKey).Bytes()
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (c *ProductCatalogCache) SetProducts(ctx context.Context, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, productCatalogKey, raw, 0).Err()
}

func (c *ProductCatalogCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

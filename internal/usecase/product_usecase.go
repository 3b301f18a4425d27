package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"medpipeline/internal/usecase/interfaces"
)

var (
	ErrProductExists      = errors.New("product already exists")
	ErrInvalidProductName = errors.New("invalid product name")
)

// DefaultProducts seeds the catalog when neither the remote sheet nor the
// cache can supply one.
var DefaultProducts = []string{
	"HOPE 10K",
	"PHACO",
	"ANT6000",
	"ANT5000",
	"A/B SCAN",
	"A/B/P SCAN",
	"B SCAN",
}

// IProductUseCase manages the product catalog: an ordered list of names used
// to populate selection choices. A record's productName is a free-standing
// copy, so catalog edits never touch existing records.

type IProductUseCase interface {
	List(ctx context.Context) []string
	Add(ctx context.Context, name string) ([]string, error)
}

type ProductUseCase struct {
	store  interfaces.IProductStore
	cache  interfaces.IProductCache
	logger *zap.Logger

	mu       sync.Mutex
	products []string
	loaded   bool
}

var _ IProductUseCase = (*ProductUseCase)(nil)

// NewProductUseCase accepts a nil cache; the fallback chain then skips
// straight from the remote sheet to the defaults.
func NewProductUseCase(store interfaces.IProductStore, cache interfaces.IProductCache, logger *zap.Logger) *ProductUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductUseCase{store: store, cache: cache, logger: logger}
}

// List returns the catalog, loading it on first use. Load order: remote
// sheet, then cache, then the built-in defaults. The catalog read never
// fails; an unreachable store just degrades the source.
func (u *ProductUseCase) List(ctx context.Context) []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ensureLoaded(ctx)

	out := make([]string, len(u.products))
	copy(out, u.products)
	return out
}

// Add appends a new name to the catalog. The cache is refreshed first so the
// addition survives a store outage; the remote write is best-effort, matching
// the catalog's fallback-first semantics.
func (u *ProductUseCase) Add(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidProductName
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.ensureLoaded(ctx)

	for _, existing := range u.products {
		if existing == name {
			return nil, ErrProductExists
		}
	}
	u.products = append(u.products, name)

	if u.cache != nil {
		if err := u.cache.SetProducts(ctx, u.products); err != nil {
			u.logger.Warn("product cache write failed", zap.Error(err))
		}
	}
	if err := u.store.ReplaceAll(ctx, u.products); err != nil {
		u.logger.Warn("product sheet write failed", zap.Error(err))
	}

	out := make([]string, len(u.products))
	copy(out, u.products)
	return out, nil
}

func (u *ProductUseCase) ensureLoaded(ctx context.Context) {
	if u.loaded {
		return
	}
	u.loaded = true

	names, err := u.store.FetchAll(ctx)
	if err == nil {
		u.products = names
		if u.cache != nil {
			if cacheErr := u.cache.SetProducts(ctx, names); cacheErr != nil {
				u.logger.Warn("product cache write failed", zap.Error(cacheErr))
			}
		}
		return
	}
	u.logger.Warn("product sheet fetch failed", zap.Error(err))

	if u.cache != nil {
		if cached, cacheErr := u.cache.GetProducts(ctx); cacheErr == nil && len(cached) > 0 {
			u.products = cached
			return
		}
	}

	u.products = append([]string(nil), DefaultProducts...)
}

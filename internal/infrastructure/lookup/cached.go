package lookup

import (
	"context"
	"time"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

// CachedLookup keeps successful lookups in memory for ttl. Failures and
// unknown postal codes are never cached.
type CachedLookup struct {
	distance interfaces.IDistanceLookup
	editions interfaces.IEditionLookup
	cache    *gocache.Cache
}

var (
	_ interfaces.IDistanceLookup = (*CachedLookup)(nil)
	_ interfaces.IEditionLookup  = (*CachedLookup)(nil)
)

func NewCachedLookup(distance interfaces.IDistanceLookup, editions interfaces.IEditionLookup, ttl time.Duration) *CachedLookup {
	return &CachedLookup{
		distance: distance,
		editions: editions,
		cache:    gocache.New(ttl, 2*ttl),
	}
}

func (c *CachedLookup) GetDistance(ctx context.Context, postalCode string) (entities.DistanceQuote, error) {
	key := "distance:" + postalCode
	if v, ok := c.cache.Get(key); ok {
		if q, ok := v.(entities.DistanceQuote); ok {
			return q, nil
		}
	}
	q, err := c.distance.GetDistance(ctx, postalCode)
	if err != nil {
		return q, err
	}
	if q.Resolved() {
		c.cache.SetDefault(key, q)
	}
	return q, nil
}

func (c *CachedLookup) GetLocalEditions(ctx context.Context, postalCode string) (entities.EditionCatalog, error) {
	key := "editions:" + postalCode
	if v, ok := c.cache.Get(key); ok {
		if catalog, ok := v.(entities.EditionCatalog); ok {
			return cloneCatalog(catalog), nil
		}
	}
	catalog, err := c.editions.GetLocalEditions(ctx, postalCode)
	if err != nil {
		return catalog, err
	}
	c.cache.SetDefault(key, cloneCatalog(catalog))
	return catalog, nil
}

func cloneCatalog(c entities.EditionCatalog) entities.EditionCatalog {
	out := entities.EditionCatalog{PostalCode: c.PostalCode, Editions: make([]entities.Edition, len(c.Editions))}
	copy(out.Editions, c.Editions)
	return out
}

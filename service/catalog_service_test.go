// file: service/catalog_service_test.go

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/derangga/laundry-app-sub001/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeCache implements ICacheClient over a plain map.
type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := c.values[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		c.values[key] = string(v)
	case string:
		c.values[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := c.values[key]; ok {
			delete(c.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestCatalogService_ListUsesCache(t *testing.T) {
	repo := new(mockCatalogRepo)
	cache := newFakeCache()
	svc := NewCatalogService(repo, cache)

	items := []*model.ServiceItem{{ID: 1, Name: "Wash & Fold", Unit: "kg", Price: 10}}
	repo.On("List").Return(items, nil).Once()

	// First call misses the cache and hits the repository.
	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	// Second call is served from the cache; the repo mock would fail on a
	// second List call.
	got, err = svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Wash & Fold", got[0].Name)
	repo.AssertExpectations(t)
}

func TestCatalogService_MutationInvalidatesCache(t *testing.T) {
	repo := new(mockCatalogRepo)
	cache := newFakeCache()
	svc := NewCatalogService(repo, cache)

	stale, _ := json.Marshal([]*model.ServiceItem{{ID: 1, Name: "Old Name", Price: 5}})
	cache.values[catalogCacheKey] = string(stale)

	repo.On("Update", mock.Anything).Return(nil).Once()

	_, err := svc.Update(context.Background(), 1, &model.CreateServiceItemRequest{Name: "New Name", Unit: "kg", Price: 12, TurnaroundHours: 24})
	assert.NoError(t, err)

	_, cached := cache.values[catalogCacheKey]
	assert.False(t, cached, "catalog cache must be dropped on update")
	repo.AssertExpectations(t)
}

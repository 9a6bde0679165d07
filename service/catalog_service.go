// file: service/catalog_service.go

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/derangga/laundry-app-sub001/logger"
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/derangga/laundry-app-sub001/repository"
)

const catalogCacheKey = "catalog:services"

// CatalogService manages the laundry price list with a cache-aside strategy:
// the list is read on every order intake, so it is served from Redis and
// invalidated on mutation.
type CatalogService struct {
	repo  repository.ICatalogRepository
	cache ICacheClient
}

func NewCatalogService(repo repository.ICatalogRepository, cache ICacheClient) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) List(ctx context.Context) ([]*model.ServiceItem, error) {
	if cached, err := s.cache.Get(ctx, catalogCacheKey).Result(); err == nil {
		var items []*model.ServiceItem
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
	}

	items, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		// Best effort: a cache write failure only costs the next read a DB trip.
		s.cache.Set(ctx, catalogCacheKey, data, 10*time.Minute)
	}

	return items, nil
}

func (s *CatalogService) Create(ctx context.Context, req *model.CreateServiceItemRequest) (*model.ServiceItem, error) {
	item := &model.ServiceItem{
		Name:            req.Name,
		Unit:            req.Unit,
		Price:           req.Price,
		TurnaroundHours: req.TurnaroundHours,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, catalogCacheKey)
	logger.Log.WithField("service_id", item.ID).Info("Catalog service created")
	return item, nil
}

func (s *CatalogService) Update(ctx context.Context, id int, req *model.CreateServiceItemRequest) (*model.ServiceItem, error) {
	item := &model.ServiceItem{
		ID:              id,
		Name:            req.Name,
		Unit:            req.Unit,
		Price:           req.Price,
		TurnaroundHours: req.TurnaroundHours,
	}
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, catalogCacheKey)
	return item, nil
}

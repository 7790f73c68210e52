package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"staydrive/internal/domain"
	"staydrive/internal/pkg/logger"
)

var ErrNotFound = errors.New("Item not found")

const (
	GuestHousesPath = "/guest-houses"
	CarsPath        = "/cars"
)

// ListingPaths are the cached catalog listings, dropped after the catalog changes.
var ListingPaths = []string{GuestHousesPath, CarsPath}

// Store is the read side of the bookable catalog.
type Store interface {
	GetGuestHouse(ctx context.Context, id int64) (*domain.GuestHouse, error)
	GetCar(ctx context.Context, id int64) (*domain.Car, error)
	ListGuestHouses(ctx context.Context) ([]domain.GuestHouse, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
}

type Cache interface {
	Get(ctx context.Context, path string, dst any) (bool, error)
	Set(ctx context.Context, path string, value any) error
}

type Service struct {
	store Store
	cache Cache
	log   logger.Logger
}

func NewService(store Store, cache Cache, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: store, cache: cache, log: log}
}

/* ---------- GUEST HOUSES ---------- */

func (s *Service) ListGuestHouses(ctx context.Context, f GuestHouseFilters) ([]domain.GuestHouse, error) {
	var all []domain.GuestHouse
	if !s.cached(ctx, GuestHousesPath, &all) {
		rows, err := s.store.ListGuestHouses(ctx)
		if err != nil {
			return nil, fmt.Errorf("list guest houses: %w", err)
		}
		all = rows
		s.remember(ctx, GuestHousesPath, all)
	}

	out := make([]domain.GuestHouse, 0, len(all))
	for _, gh := range all {
		if f.matches(gh) {
			out = append(out, gh)
		}
	}
	return out, nil
}

func (s *Service) GetGuestHouse(ctx context.Context, id int64) (*domain.GuestHouse, error) {
	gh, err := s.store.GetGuestHouse(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return gh, nil
}

/* ---------- CARS ---------- */

func (s *Service) ListCars(ctx context.Context, f CarFilters) ([]domain.Car, error) {
	var all []domain.Car
	if !s.cached(ctx, CarsPath, &all) {
		rows, err := s.store.ListCars(ctx)
		if err != nil {
			return nil, fmt.Errorf("list cars: %w", err)
		}
		all = rows
		s.remember(ctx, CarsPath, all)
	}

	out := make([]domain.Car, 0, len(all))
	for _, car := range all {
		if f.matches(car) {
			out = append(out, car)
		}
	}
	return out, nil
}

func (s *Service) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	car, err := s.store.GetCar(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return car, nil
}

// cached reports a cache hit. Cache failures only cost a store round trip.
func (s *Service) cached(ctx context.Context, path string, dst any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, path, dst)
	if err != nil {
		s.log.Error("catalog_cache_read_failed path=%s error=%v", path, err)
		return false
	}
	return hit
}

func (s *Service) remember(ctx context.Context, path string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, path, value); err != nil {
		s.log.Error("catalog_cache_write_failed path=%s error=%v", path, err)
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"staydrive/internal/domain"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetGuestHouse(ctx context.Context, id int64) (*domain.GuestHouse, error) {
	var m guestHouseModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	gh := toDomainGuestHouse(m)
	return &gh, nil
}

func (r *CatalogRepository) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	var m carModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	car := toDomainCar(m)
	return &car, nil
}

func (r *CatalogRepository) ListGuestHouses(ctx context.Context) ([]domain.GuestHouse, error) {
	var rows []guestHouseModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.GuestHouse, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainGuestHouse(m))
	}
	return out, nil
}

func (r *CatalogRepository) ListCars(ctx context.Context) ([]domain.Car, error) {
	var rows []carModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Car, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCar(m))
	}
	return out, nil
}

func (r *CatalogRepository) CreateGuestHouse(ctx context.Context, gh *domain.GuestHouse) error {
	m := guestHouseModel{
		ID:            gh.ID,
		Name:          gh.Name,
		Location:      gh.Location,
		Description:   gh.Description,
		PricePerNight: gh.PricePerNight,
		MaxGuests:     gh.MaxGuests,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	gh.ID = m.ID
	return nil
}

func (r *CatalogRepository) CreateCar(ctx context.Context, car *domain.Car) error {
	m := carModel{
		ID:          car.ID,
		Name:        car.Name,
		Brand:       car.Brand,
		Model:       car.Model,
		Description: car.Description,
		PricePerDay: car.PricePerDay,
		Seats:       car.Seats,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	car.ID = m.ID
	return nil
}

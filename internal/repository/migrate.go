package repository

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"staydrive/internal/domain"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

var seedGuestHouses = []domain.GuestHouse{
	{Name: "Lakeside Cabin", Location: "North shore", Description: "Two bedrooms with a private jetty", PricePerNight: 150, MaxGuests: 4},
	{Name: "Old Town Loft", Location: "City centre", Description: "Top-floor loft near the square", PricePerNight: 95, MaxGuests: 2},
	{Name: "Hillside Farmhouse", Location: "Valley road", Description: "Stone farmhouse with a garden", PricePerNight: 220, MaxGuests: 8},
}

var seedCars = []domain.Car{
	{Name: "City Hatchback", Brand: "Toyota", Model: "Yaris", PricePerDay: 45, Seats: 5},
	{Name: "Family Estate", Brand: "Skoda", Model: "Octavia Combi", PricePerDay: 70, Seats: 5},
	{Name: "Seven Seater", Brand: "Kia", Model: "Sorento", PricePerDay: 110, Seats: 7},
}

// Seed inserts the sample catalog when it is empty. It returns how many rows
// were added.
func Seed(ctx context.Context, db *gorm.DB) (int, error) {
	catalog := NewCatalogRepository(db)
	added := 0

	var houses int64
	if err := db.WithContext(ctx).Model(&guestHouseModel{}).Count(&houses).Error; err != nil {
		return 0, err
	}
	if houses == 0 {
		for _, gh := range seedGuestHouses {
			gh := gh
			if err := catalog.CreateGuestHouse(ctx, &gh); err != nil {
				return added, fmt.Errorf("seed guest house %q: %w", gh.Name, err)
			}
			added++
		}
	} else {
		log.Printf("seed_skip table=guest_houses rows=%d", houses)
	}

	var cars int64
	if err := db.WithContext(ctx).Model(&carModel{}).Count(&cars).Error; err != nil {
		return added, err
	}
	if cars == 0 {
		for _, car := range seedCars {
			car := car
			if err := catalog.CreateCar(ctx, &car); err != nil {
				return added, fmt.Errorf("seed car %q: %w", car.Name, err)
			}
			added++
		}
	} else {
		log.Printf("seed_skip table=cars rows=%d", cars)
	}

	return added, nil
}

package catalog

import "staydrive/internal/domain"

type GuestHouseFilters struct {
	Location  string
	MaxPrice  float64
	MinGuests int
}

func (f GuestHouseFilters) matches(gh domain.GuestHouse) bool {
	if f.Location != "" && !containsFold(gh.Location, f.Location) {
		return false
	}
	if f.MaxPrice > 0 && gh.PricePerNight > f.MaxPrice {
		return false
	}
	if f.MinGuests > 0 && gh.MaxGuests > 0 && gh.MaxGuests < f.MinGuests {
		return false
	}
	return true
}

type CarFilters struct {
	Brand    string
	MaxPrice float64
	MinSeats int
}

func (f CarFilters) matches(car domain.Car) bool {
	if f.Brand != "" && !containsFold(car.Brand, f.Brand) {
		return false
	}
	if f.MaxPrice > 0 && car.PricePerDay > f.MaxPrice {
		return false
	}
	if f.MinSeats > 0 && car.Seats < f.MinSeats {
		return false
	}
	return true
}

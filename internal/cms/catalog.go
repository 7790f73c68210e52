package cms

import (
	"context"

	"staydrive/internal/domain"
)

type guestHouseAttributes struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	MaxGuests   int     `json:"maxGuests"`
}

type carAttributes struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"pricePerDay"`
	Seats       int     `json:"seats"`
}

func toGuestHouse(e entry[guestHouseAttributes]) domain.GuestHouse {
	a := e.Attributes
	return domain.GuestHouse{
		ID:            e.ID,
		Name:          a.Name,
		Location:      a.Location,
		Description:   a.Description,
		PricePerNight: a.Price,
		MaxGuests:     a.MaxGuests,
	}
}

func toCar(e entry[carAttributes]) domain.Car {
	a := e.Attributes
	return domain.Car{
		ID:          e.ID,
		Name:        a.Name,
		Brand:       a.Brand,
		Model:       a.Model,
		Description: a.Description,
		PricePerDay: a.PricePerDay,
		Seats:       a.Seats,
	}
}

func (c *Client) GetGuestHouse(ctx context.Context, id int64) (*domain.GuestHouse, error) {
	e, err := getOne[guestHouseAttributes](ctx, c, collectionGuestHouses, id)
	if err != nil {
		return nil, err
	}
	gh := toGuestHouse(*e)
	return &gh, nil
}

func (c *Client) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	e, err := getOne[carAttributes](ctx, c, collectionCars, id)
	if err != nil {
		return nil, err
	}
	car := toCar(*e)
	return &car, nil
}

func (c *Client) ListGuestHouses(ctx context.Context) ([]domain.GuestHouse, error) {
	rows, err := listAll[guestHouseAttributes](ctx, c, collectionGuestHouses, "")
	if err != nil {
		return nil, err
	}
	out := make([]domain.GuestHouse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toGuestHouse(r))
	}
	return out, nil
}

func (c *Client) ListCars(ctx context.Context) ([]domain.Car, error) {
	rows, err := listAll[carAttributes](ctx, c, collectionCars, "")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Car, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCar(r))
	}
	return out, nil
}

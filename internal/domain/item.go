package domain

type GuestHouse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location,omitempty"`
	Description   string  `json:"description,omitempty"`
	PricePerNight float64 `json:"price"`
	MaxGuests     int     `json:"maxGuests,omitempty"`
}

type Car struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	Model       string  `json:"model,omitempty"`
	Description string  `json:"description,omitempty"`
	PricePerDay float64 `json:"pricePerDay"`
	Seats       int     `json:"seats,omitempty"`
}

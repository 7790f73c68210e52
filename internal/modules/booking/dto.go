package booking

import "staydrive/internal/domain"

// Request is a booking request of either kind before validation. TotalPrice
// carries whatever the client computed and is never persisted.
type Request struct {
	Kind            domain.BookingKind
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	StartDate       string
	EndDate         string
	NumGuests       int
	PickupLocation  string
	DriverLicense   string
	SpecialRequests string
	ItemID          int64
	ClientTotal     float64
}

type StayBookingRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	NumGuests       int     `json:"numGuests"`
	SpecialRequests string  `json:"specialRequests"`
	GuestHouseID    int64   `json:"guestHouseId"`
	TotalPrice      float64 `json:"totalPrice"`
}

func (r StayBookingRequest) ToRequest() Request {
	return Request{
		Kind:            domain.KindStay,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		StartDate:       r.CheckIn,
		EndDate:         r.CheckOut,
		NumGuests:       r.NumGuests,
		SpecialRequests: r.SpecialRequests,
		ItemID:          r.GuestHouseID,
		ClientTotal:     r.TotalPrice,
	}
}

type RentalBookingRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	PickupDate      string  `json:"pickupDate"`
	ReturnDate      string  `json:"returnDate"`
	PickupLocation  string  `json:"pickupLocation"`
	DriverLicense   string  `json:"driverLicense"`
	SpecialRequests string  `json:"specialRequests"`
	CarID           int64   `json:"carId"`
	TotalPrice      float64 `json:"totalPrice"`
}

func (r RentalBookingRequest) ToRequest() Request {
	return Request{
		Kind:            domain.KindRental,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		StartDate:       r.PickupDate,
		EndDate:         r.ReturnDate,
		PickupLocation:  r.PickupLocation,
		DriverLicense:   r.DriverLicense,
		SpecialRequests: r.SpecialRequests,
		ItemID:          r.CarID,
		ClientTotal:     r.TotalPrice,
	}
}

type SubmitResult struct {
	BookingID string          `json:"bookingId"`
	Message   string          `json:"message"`
	Booking   *domain.Booking `json:"booking"`
}

type QuoteRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=stay rental"`
	ItemID    int64  `json:"itemId" validate:"required,gt=0"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

type Quote struct {
	Units      int     `json:"units"`
	UnitRate   float64 `json:"unitRate"`
	TotalPrice float64 `json:"totalPrice"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

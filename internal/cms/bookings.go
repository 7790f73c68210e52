package cms

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"staydrive/internal/domain"
)

// stayAttributes mirrors the "bookings" collection. Optional fields carry
// omitempty so an absent value is never sent as an empty string.
type stayAttributes struct {
	BookingID       string    `json:"bookingId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	NumGuests       int       `json:"numGuests"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	TotalPrice      float64   `json:"totalPrice"`
	BookingStatus   string    `json:"bookingStatus"`
	UserID          *string   `json:"userId,omitempty"`
	GuestHouse      relation  `json:"guest_house"`
	CreatedAt       time.Time `json:"createdAt"`
}

type rentalAttributes struct {
	BookingID       string    `json:"bookingId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	PickupDate      string    `json:"pickupDate"`
	ReturnDate      string    `json:"returnDate"`
	PickupLocation  string    `json:"pickupLocation,omitempty"`
	DriverLicense   *string   `json:"driverLicense,omitempty"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	TotalPrice      float64   `json:"totalPrice"`
	BookingStatus   string    `json:"bookingStatus"`
	UserID          *string   `json:"userId,omitempty"`
	Car             relation  `json:"car"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Write payloads link relations by bare id.
type stayPayload struct {
	BookingID       string  `json:"bookingId"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	NumGuests       int     `json:"numGuests"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	TotalPrice      float64 `json:"totalPrice"`
	BookingStatus   string  `json:"bookingStatus"`
	UserID          *string `json:"userId,omitempty"`
	GuestHouse      int64   `json:"guest_house"`
}

type rentalPayload struct {
	BookingID       string  `json:"bookingId"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	PickupDate      string  `json:"pickupDate"`
	ReturnDate      string  `json:"returnDate"`
	PickupLocation  string  `json:"pickupLocation,omitempty"`
	DriverLicense   *string `json:"driverLicense,omitempty"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	TotalPrice      float64 `json:"totalPrice"`
	BookingStatus   string  `json:"bookingStatus"`
	UserID          *string `json:"userId,omitempty"`
	Car             int64   `json:"car"`
}

type statusPayload struct {
	BookingStatus string `json:"bookingStatus"`
}

type writeBody[T any] struct {
	Data T `json:"data"`
}

func toStay(e entry[stayAttributes]) domain.StayBooking {
	a := e.Attributes
	return domain.StayBooking{
		ID:              e.ID,
		BookingID:       a.BookingID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Phone:           a.Phone,
		CheckIn:         a.CheckIn,
		CheckOut:        a.CheckOut,
		NumGuests:       a.NumGuests,
		SpecialRequests: a.SpecialRequests,
		TotalPrice:      a.TotalPrice,
		Status:          domain.BookingStatus(a.BookingStatus),
		GuestHouseID:    a.GuestHouse.id(),
		UserID:          a.UserID,
		CreatedAt:       a.CreatedAt,
	}
}

func toRental(e entry[rentalAttributes]) domain.RentalBooking {
	a := e.Attributes
	return domain.RentalBooking{
		ID:              e.ID,
		BookingID:       a.BookingID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Phone:           a.Phone,
		PickupDate:      a.PickupDate,
		ReturnDate:      a.ReturnDate,
		PickupLocation:  a.PickupLocation,
		DriverLicense:   a.DriverLicense,
		SpecialRequests: a.SpecialRequests,
		TotalPrice:      a.TotalPrice,
		Status:          domain.BookingStatus(a.BookingStatus),
		CarID:           a.Car.id(),
		UserID:          a.UserID,
		CreatedAt:       a.CreatedAt,
	}
}

func (c *Client) CreateStayBooking(ctx context.Context, b *domain.StayBooking) (*domain.StayBooking, error) {
	body := writeBody[stayPayload]{Data: stayPayload{
		BookingID:       b.BookingID,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		NumGuests:       b.NumGuests,
		SpecialRequests: b.SpecialRequests,
		TotalPrice:      b.TotalPrice,
		BookingStatus:   string(b.Status),
		UserID:          b.UserID,
		GuestHouse:      b.GuestHouseID,
	}}

	var env envelope[entry[stayAttributes]]
	if err := c.do(ctx, http.MethodPost, collectionStays, nil, body, &env); err != nil {
		return nil, err
	}
	out := toStay(env.Data)
	if out.GuestHouseID == 0 {
		out.GuestHouseID = b.GuestHouseID
	}
	return &out, nil
}

func (c *Client) CreateRentalBooking(ctx context.Context, b *domain.RentalBooking) (*domain.RentalBooking, error) {
	body := writeBody[rentalPayload]{Data: rentalPayload{
		BookingID:       b.BookingID,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		PickupDate:      b.PickupDate,
		ReturnDate:      b.ReturnDate,
		PickupLocation:  b.PickupLocation,
		DriverLicense:   b.DriverLicense,
		SpecialRequests: b.SpecialRequests,
		TotalPrice:      b.TotalPrice,
		BookingStatus:   string(b.Status),
		UserID:          b.UserID,
		Car:             b.CarID,
	}}

	var env envelope[entry[rentalAttributes]]
	if err := c.do(ctx, http.MethodPost, collectionRentals, nil, body, &env); err != nil {
		return nil, err
	}
	out := toRental(env.Data)
	if out.CarID == 0 {
		out.CarID = b.CarID
	}
	return &out, nil
}

func (c *Client) UpdateStayBookingStatus(ctx context.Context, ref int64, status domain.BookingStatus) (*domain.StayBooking, error) {
	var env envelope[entry[stayAttributes]]
	path := fmt.Sprintf("%s/%d", collectionStays, ref)
	if err := c.do(ctx, http.MethodPut, path, nil, writeBody[statusPayload]{Data: statusPayload{BookingStatus: string(status)}}, &env); err != nil {
		return nil, err
	}
	out := toStay(env.Data)
	return &out, nil
}

func (c *Client) UpdateRentalBookingStatus(ctx context.Context, ref int64, status domain.BookingStatus) (*domain.RentalBooking, error) {
	var env envelope[entry[rentalAttributes]]
	path := fmt.Sprintf("%s/%d", collectionRentals, ref)
	if err := c.do(ctx, http.MethodPut, path, nil, writeBody[statusPayload]{Data: statusPayload{BookingStatus: string(status)}}, &env); err != nil {
		return nil, err
	}
	out := toRental(env.Data)
	return &out, nil
}

func (c *Client) ListStayBookings(ctx context.Context) ([]domain.StayBooking, error) {
	rows, err := listAll[stayAttributes](ctx, c, collectionStays, "createdAt:desc")
	if err != nil {
		return nil, err
	}
	out := make([]domain.StayBooking, 0, len(rows))
	for _, r := range rows {
		out = append(out, toStay(r))
	}
	return out, nil
}

func (c *Client) ListRentalBookings(ctx context.Context) ([]domain.RentalBooking, error) {
	rows, err := listAll[rentalAttributes](ctx, c, collectionRentals, "createdAt:desc")
	if err != nil {
		return nil, err
	}
	out := make([]domain.RentalBooking, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRental(r))
	}
	return out, nil
}

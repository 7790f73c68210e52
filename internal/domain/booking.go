package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for every booking period field.
const DateLayout = "2006-01-02"

type BookingKind string

const (
	KindStay   BookingKind = "stay"
	KindRental BookingKind = "rental"
)

func (k BookingKind) IsValid() bool {
	return k == KindStay || k == KindRental
}

func ParseBookingKind(s string) (BookingKind, error) {
	k := BookingKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid booking kind: %q", s)
	}
	return k, nil
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// BookingStatuses lists every accepted status. Any status may move to any other.
var BookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCancelled,
	BookingCompleted,
}

func (s BookingStatus) IsValid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("invalid booking status: %q", s)
	}
	return st, nil
}

// StayBooking is the persisted shape of a guest-house reservation.
type StayBooking struct {
	ID              int64         `json:"id"`
	BookingID       string        `json:"bookingId"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone,omitempty"`
	CheckIn         string        `json:"checkIn"`
	CheckOut        string        `json:"checkOut"`
	NumGuests       int           `json:"numGuests"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          BookingStatus `json:"bookingStatus"`
	GuestHouseID    int64         `json:"guest_house"`
	UserID          *string       `json:"userId,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// RentalBooking is the persisted shape of a car rental.
type RentalBooking struct {
	ID              int64         `json:"id"`
	BookingID       string        `json:"bookingId"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone,omitempty"`
	PickupDate      string        `json:"pickupDate"`
	ReturnDate      string        `json:"returnDate"`
	PickupLocation  string        `json:"pickupLocation,omitempty"`
	DriverLicense   *string       `json:"driverLicense,omitempty"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          BookingStatus `json:"bookingStatus"`
	CarID           int64         `json:"car"`
	UserID          *string       `json:"userId,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Booking is the unified view over both persisted shapes.
type Booking struct {
	Kind            BookingKind   `json:"kind"`
	ID              int64         `json:"id"`
	BookingID       string        `json:"bookingId"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone,omitempty"`
	StartDate       string        `json:"startDate"`
	EndDate         string        `json:"endDate"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	ItemID          int64         `json:"itemId"`
	NumGuests       *int          `json:"numGuests,omitempty"`
	PickupLocation  string        `json:"pickupLocation,omitempty"`
	DriverLicense   *string       `json:"driverLicense,omitempty"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	UserID          *string       `json:"userId,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

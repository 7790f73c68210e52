package repository

import (
	"time"

	"staydrive/internal/domain"
)

type stayBookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	BookingID       string    `gorm:"column:booking_id;size:64;not null;uniqueIndex"`
	FirstName       string    `gorm:"column:first_name;not null"`
	LastName        string    `gorm:"column:last_name;not null"`
	Email           string    `gorm:"column:email;not null"`
	Phone           *string   `gorm:"column:phone"`
	CheckIn         string    `gorm:"column:check_in;size:10;not null"`
	CheckOut        string    `gorm:"column:check_out;size:10;not null"`
	NumGuests       int       `gorm:"column:num_guests;not null"`
	SpecialRequests *string   `gorm:"column:special_requests"`
	TotalPrice      float64   `gorm:"column:total_price;not null"`
	BookingStatus   string    `gorm:"column:booking_status;size:16;not null;index"`
	GuestHouseID    int64     `gorm:"column:guest_house_id;not null;index"`
	UserID          *string   `gorm:"column:user_id;index"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (stayBookingModel) TableName() string { return "stay_bookings" }

type rentalBookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	BookingID       string    `gorm:"column:booking_id;size:64;not null;uniqueIndex"`
	FirstName       string    `gorm:"column:first_name;not null"`
	LastName        string    `gorm:"column:last_name;not null"`
	Email           string    `gorm:"column:email;not null"`
	Phone           *string   `gorm:"column:phone"`
	PickupDate      string    `gorm:"column:pickup_date;size:10;not null"`
	ReturnDate      string    `gorm:"column:return_date;size:10;not null"`
	PickupLocation  *string   `gorm:"column:pickup_location"`
	DriverLicense   *string   `gorm:"column:driver_license"`
	SpecialRequests *string   `gorm:"column:special_requests"`
	TotalPrice      float64   `gorm:"column:total_price;not null"`
	BookingStatus   string    `gorm:"column:booking_status;size:16;not null;index"`
	CarID           int64     `gorm:"column:car_id;not null;index"`
	UserID          *string   `gorm:"column:user_id;index"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (rentalBookingModel) TableName() string { return "rental_bookings" }

type guestHouseModel struct {
	ID            int64   `gorm:"column:id;primaryKey"`
	Name          string  `gorm:"column:name;not null"`
	Location      string  `gorm:"column:location"`
	Description   string  `gorm:"column:description"`
	PricePerNight float64 `gorm:"column:price_per_night;not null"`
	MaxGuests     int     `gorm:"column:max_guests"`
}

func (guestHouseModel) TableName() string { return "guest_houses" }

type carModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;not null"`
	Brand       string  `gorm:"column:brand"`
	Model       string  `gorm:"column:model"`
	Description string  `gorm:"column:description"`
	PricePerDay float64 `gorm:"column:price_per_day;not null"`
	Seats       int     `gorm:"column:seats"`
}

func (carModel) TableName() string { return "cars" }

// models lists every table owned by the relational store, in migration order.
func models() []any {
	return []any{
		&guestHouseModel{},
		&carModel{},
		&stayBookingModel{},
		&rentalBookingModel{},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toStayModel(b *domain.StayBooking) stayBookingModel {
	return stayBookingModel{
		ID:              b.ID,
		BookingID:       b.BookingID,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           optional(b.Phone),
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		NumGuests:       b.NumGuests,
		SpecialRequests: optional(b.SpecialRequests),
		TotalPrice:      b.TotalPrice,
		BookingStatus:   string(b.Status),
		GuestHouseID:    b.GuestHouseID,
		UserID:          b.UserID,
		CreatedAt:       b.CreatedAt,
	}
}

func toDomainStay(m stayBookingModel) domain.StayBooking {
	return domain.StayBooking{
		ID:              m.ID,
		BookingID:       m.BookingID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Email:           m.Email,
		Phone:           deref(m.Phone),
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		NumGuests:       m.NumGuests,
		SpecialRequests: deref(m.SpecialRequests),
		TotalPrice:      m.TotalPrice,
		Status:          domain.BookingStatus(m.BookingStatus),
		GuestHouseID:    m.GuestHouseID,
		UserID:          m.UserID,
		CreatedAt:       m.CreatedAt,
	}
}

func toRentalModel(b *domain.RentalBooking) rentalBookingModel {
	return rentalBookingModel{
		ID:              b.ID,
		BookingID:       b.BookingID,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           optional(b.Phone),
		PickupDate:      b.PickupDate,
		ReturnDate:      b.ReturnDate,
		PickupLocation:  optional(b.PickupLocation),
		DriverLicense:   b.DriverLicense,
		SpecialRequests: optional(b.SpecialRequests),
		TotalPrice:      b.TotalPrice,
		BookingStatus:   string(b.Status),
		CarID:           b.CarID,
		UserID:          b.UserID,
		CreatedAt:       b.CreatedAt,
	}
}

func toDomainRental(m rentalBookingModel) domain.RentalBooking {
	return domain.RentalBooking{
		ID:              m.ID,
		BookingID:       m.BookingID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Email:           m.Email,
		Phone:           deref(m.Phone),
		PickupDate:      m.PickupDate,
		ReturnDate:      m.ReturnDate,
		PickupLocation:  deref(m.PickupLocation),
		DriverLicense:   m.DriverLicense,
		SpecialRequests: deref(m.SpecialRequests),
		TotalPrice:      m.TotalPrice,
		Status:          domain.BookingStatus(m.BookingStatus),
		CarID:           m.CarID,
		UserID:          m.UserID,
		CreatedAt:       m.CreatedAt,
	}
}

func toDomainGuestHouse(m guestHouseModel) domain.GuestHouse {
	return domain.GuestHouse{
		ID:            m.ID,
		Name:          m.Name,
		Location:      m.Location,
		Description:   m.Description,
		PricePerNight: m.PricePerNight,
		MaxGuests:     m.MaxGuests,
	}
}

func toDomainCar(m carModel) domain.Car {
	return domain.Car{
		ID:          m.ID,
		Name:        m.Name,
		Brand:       m.Brand,
		Model:       m.Model,
		Description: m.Description,
		PricePerDay: m.PricePerDay,
		Seats:       m.Seats,
	}
}

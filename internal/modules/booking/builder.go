package booking

import (
	"strings"

	"staydrive/internal/domain"
)

// stayRecordBuilder assembles a stay record step by step. Optional fields are
// only set when a value is present.
type stayRecordBuilder struct {
	rec domain.StayBooking
}

func newStayRecord(bookingID string, req Request, total float64) *stayRecordBuilder {
	return &stayRecordBuilder{rec: domain.StayBooking{
		BookingID:       bookingID,
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.TrimSpace(req.Email),
		CheckIn:         strings.TrimSpace(req.StartDate),
		CheckOut:        strings.TrimSpace(req.EndDate),
		NumGuests:       req.NumGuests,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		TotalPrice:      total,
		Status:          domain.BookingPending,
		GuestHouseID:    req.ItemID,
	}}
}

func (b *stayRecordBuilder) WithPhone(phone string) *stayRecordBuilder {
	b.rec.Phone = strings.TrimSpace(phone)
	return b
}

func (b *stayRecordBuilder) WithOwner(owner *domain.Identity) *stayRecordBuilder {
	b.rec.UserID = ownerRef(owner)
	return b
}

func (b *stayRecordBuilder) Build() *domain.StayBooking {
	rec := b.rec
	return &rec
}

type rentalRecordBuilder struct {
	rec domain.RentalBooking
}

func newRentalRecord(bookingID string, req Request, total float64) *rentalRecordBuilder {
	return &rentalRecordBuilder{rec: domain.RentalBooking{
		BookingID:       bookingID,
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.TrimSpace(req.Email),
		PickupDate:      strings.TrimSpace(req.StartDate),
		ReturnDate:      strings.TrimSpace(req.EndDate),
		PickupLocation:  strings.TrimSpace(req.PickupLocation),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		TotalPrice:      total,
		Status:          domain.BookingPending,
		CarID:           req.ItemID,
	}}
}

func (b *rentalRecordBuilder) WithPhone(phone string) *rentalRecordBuilder {
	b.rec.Phone = strings.TrimSpace(phone)
	return b
}

func (b *rentalRecordBuilder) WithDriverLicense(license string) *rentalRecordBuilder {
	if v := strings.TrimSpace(license); v != "" {
		b.rec.DriverLicense = &v
	}
	return b
}

func (b *rentalRecordBuilder) WithOwner(owner *domain.Identity) *rentalRecordBuilder {
	b.rec.UserID = ownerRef(owner)
	return b
}

func (b *rentalRecordBuilder) Build() *domain.RentalBooking {
	rec := b.rec
	return &rec
}

func ownerRef(owner *domain.Identity) *string {
	if owner == nil || owner.ID == "" {
		return nil
	}
	id := owner.ID
	return &id
}

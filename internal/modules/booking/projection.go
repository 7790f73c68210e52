package booking

import (
	"sort"

	"staydrive/internal/domain"
)

func projectStay(r domain.StayBooking) domain.Booking {
	guests := r.NumGuests
	return domain.Booking{
		Kind:            domain.KindStay,
		ID:              r.ID,
		BookingID:       r.BookingID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		StartDate:       r.CheckIn,
		EndDate:         r.CheckOut,
		TotalPrice:      r.TotalPrice,
		Status:          r.Status,
		ItemID:          r.GuestHouseID,
		NumGuests:       &guests,
		SpecialRequests: r.SpecialRequests,
		UserID:          r.UserID,
		CreatedAt:       r.CreatedAt,
	}
}

func projectRental(r domain.RentalBooking) domain.Booking {
	return domain.Booking{
		Kind:            domain.KindRental,
		ID:              r.ID,
		BookingID:       r.BookingID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		StartDate:       r.PickupDate,
		EndDate:         r.ReturnDate,
		TotalPrice:      r.TotalPrice,
		Status:          r.Status,
		ItemID:          r.CarID,
		PickupLocation:  r.PickupLocation,
		DriverLicense:   r.DriverLicense,
		SpecialRequests: r.SpecialRequests,
		UserID:          r.UserID,
		CreatedAt:       r.CreatedAt,
	}
}

func sortNewestFirst(list []domain.Booking) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

package booking

import (
	"context"

	"staydrive/internal/domain"
)

// BookingStore is the persistence collaborator. Stays and rentals live in
// separate collections with their own field names, so every call is per kind.
type BookingStore interface {
	CreateStayBooking(ctx context.Context, b *domain.StayBooking) (*domain.StayBooking, error)
	CreateRentalBooking(ctx context.Context, b *domain.RentalBooking) (*domain.RentalBooking, error)
	UpdateStayBookingStatus(ctx context.Context, ref int64, status domain.BookingStatus) (*domain.StayBooking, error)
	UpdateRentalBookingStatus(ctx context.Context, ref int64, status domain.BookingStatus) (*domain.RentalBooking, error)
	ListStayBookings(ctx context.Context) ([]domain.StayBooking, error)
	ListRentalBookings(ctx context.Context) ([]domain.RentalBooking, error)
}

// ItemCatalog supplies the bookable items and their current unit rates.
type ItemCatalog interface {
	GetGuestHouse(ctx context.Context, id int64) (*domain.GuestHouse, error)
	GetCar(ctx context.Context, id int64) (*domain.Car, error)
}

// IdentityResolver returns the signed-in user, or nil for a guest.
type IdentityResolver interface {
	CurrentUser(ctx context.Context) (*domain.Identity, error)
}

// Invalidator receives the "listing at path is stale" signal.
type Invalidator interface {
	Invalidate(ctx context.Context, path string) error
}

// ListingCache is read by the admin listing endpoint. SetIfVersion must skip
// the write when the path was invalidated after Version was read.
type ListingCache interface {
	Get(ctx context.Context, path string, dst any) (bool, error)
	Version(ctx context.Context, path string) (int64, error)
	SetIfVersion(ctx context.Context, path string, value any, version int64) (bool, error)
}

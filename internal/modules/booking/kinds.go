package booking

import (
	"context"

	"staydrive/internal/domain"
)

const (
	TagStay   = "GH"
	TagRental = "CR"
)

// draft is everything the pipeline knows about a booking before it is stored.
type draft struct {
	req       Request
	bookingID string
	total     float64
	owner     *domain.Identity
}

// kindDescriptor holds what differs between stays and rentals: labels for
// the date pair and the item, and the persistence calls with their mapping.
type kindDescriptor struct {
	kind           domain.BookingKind
	tag            string
	startField     string
	endField       string
	startLabel     string
	endLabel       string
	itemField      string
	itemMissing    string
	requiresGuests bool

	rate   func(ctx context.Context, items ItemCatalog, itemID int64) (float64, error)
	create func(ctx context.Context, store BookingStore, d draft) (domain.Booking, error)
	update func(ctx context.Context, store BookingStore, ref int64, status domain.BookingStatus) (domain.Booking, error)
	list   func(ctx context.Context, store BookingStore) ([]domain.Booking, error)
}

var stayKind = kindDescriptor{
	kind:           domain.KindStay,
	tag:            TagStay,
	startField:     "checkIn",
	endField:       "checkOut",
	startLabel:     "Check-in",
	endLabel:       "Check-out",
	itemField:      "guestHouseId",
	itemMissing:    "Selected guest house is not available",
	requiresGuests: true,

	rate: func(ctx context.Context, items ItemCatalog, itemID int64) (float64, error) {
		gh, err := items.GetGuestHouse(ctx, itemID)
		if err != nil {
			return 0, err
		}
		return gh.PricePerNight, nil
	},
	create: func(ctx context.Context, store BookingStore, d draft) (domain.Booking, error) {
		rec := newStayRecord(d.bookingID, d.req, d.total).
			WithPhone(d.req.Phone).
			WithOwner(d.owner).
			Build()
		created, err := store.CreateStayBooking(ctx, rec)
		if err != nil {
			return domain.Booking{}, err
		}
		return projectStay(*created), nil
	},
	update: func(ctx context.Context, store BookingStore, ref int64, status domain.BookingStatus) (domain.Booking, error) {
		updated, err := store.UpdateStayBookingStatus(ctx, ref, status)
		if err != nil {
			return domain.Booking{}, err
		}
		return projectStay(*updated), nil
	},
	list: func(ctx context.Context, store BookingStore) ([]domain.Booking, error) {
		rows, err := store.ListStayBookings(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Booking, 0, len(rows))
		for _, r := range rows {
			out = append(out, projectStay(r))
		}
		return out, nil
	},
}

var rentalKind = kindDescriptor{
	kind:        domain.KindRental,
	tag:         TagRental,
	startField:  "pickupDate",
	endField:    "returnDate",
	startLabel:  "Pickup",
	endLabel:    "Return",
	itemField:   "carId",
	itemMissing: "Selected car is not available",

	rate: func(ctx context.Context, items ItemCatalog, itemID int64) (float64, error) {
		car, err := items.GetCar(ctx, itemID)
		if err != nil {
			return 0, err
		}
		return car.PricePerDay, nil
	},
	create: func(ctx context.Context, store BookingStore, d draft) (domain.Booking, error) {
		rec := newRentalRecord(d.bookingID, d.req, d.total).
			WithPhone(d.req.Phone).
			WithDriverLicense(d.req.DriverLicense).
			WithOwner(d.owner).
			Build()
		created, err := store.CreateRentalBooking(ctx, rec)
		if err != nil {
			return domain.Booking{}, err
		}
		return projectRental(*created), nil
	},
	update: func(ctx context.Context, store BookingStore, ref int64, status domain.BookingStatus) (domain.Booking, error) {
		updated, err := store.UpdateRentalBookingStatus(ctx, ref, status)
		if err != nil {
			return domain.Booking{}, err
		}
		return projectRental(*updated), nil
	},
	list: func(ctx context.Context, store BookingStore) ([]domain.Booking, error) {
		rows, err := store.ListRentalBookings(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Booking, 0, len(rows))
		for _, r := range rows {
			out = append(out, projectRental(r))
		}
		return out, nil
	},
}

// allKinds fixes the order in which collections are read.
var allKinds = []*kindDescriptor{&stayKind, &rentalKind}

func descriptorFor(kind domain.BookingKind) (*kindDescriptor, bool) {
	for _, kd := range allKinds {
		if kd.kind == kind {
			return kd, true
		}
	}
	return nil, false
}

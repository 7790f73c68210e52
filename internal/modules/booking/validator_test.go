package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staydrive/internal/domain"
)

func validStay() Request {
	return Request{
		Kind:      domain.KindStay,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "j@x.com",
		StartDate: "2026-10-20",
		EndDate:   "2026-10-23",
		NumGuests: 2,
		ItemID:    1,
	}
}

func validRental() Request {
	return Request{
		Kind:           domain.KindRental,
		FirstName:      "Ana",
		LastName:       "Lee",
		Email:          "ana@x.com",
		StartDate:      "2026-10-21",
		EndDate:        "2026-10-24",
		PickupLocation: "Airport",
		ItemID:         3,
	}
}

func TestValidate(t *testing.T) {
	// Late evening in UTC still counts as the 19th.
	today := time.Date(2026, 10, 19, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(r *Request)
		field  string
		reason string
	}{
		{"valid stay", func(r *Request) {}, "", ""},
		{"missing first name", func(r *Request) { r.FirstName = "  " }, "firstName", "Please fill in all required fields"},
		{"missing email", func(r *Request) { r.Email = "" }, "email", "Please fill in all required fields"},
		{"missing check-out", func(r *Request) { r.EndDate = "" }, "checkOut", "Please fill in all required fields"},
		{"check-in today is allowed", func(r *Request) { r.StartDate = "2026-10-19" }, "", ""},
		{"check-in yesterday", func(r *Request) { r.StartDate = "2026-10-18" }, "checkIn", "Check-in date cannot be in the past"},
		{"inverted range", func(r *Request) { r.StartDate = "2026-10-22"; r.EndDate = "2026-10-21" }, "checkOut", "Check-out date must be after check-in date"},
		{"same day", func(r *Request) { r.EndDate = r.StartDate }, "checkOut", "Check-out date must be after check-in date"},
		{"zero guests", func(r *Request) { r.NumGuests = 0 }, "numGuests", "Number of guests must be at least 1"},
		{"bad start format", func(r *Request) { r.StartDate = "20/10/2026" }, "checkIn", "Check-in date is not a valid date"},
		{"past date wins over zero guests", func(r *Request) { r.StartDate = "2026-10-01"; r.NumGuests = 0 }, "checkIn", "Check-in date cannot be in the past"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStay()
			tt.mutate(&req)

			verr := Validate(req, today)
			if tt.reason == "" {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.reason, verr.Reason)
		})
	}
}

func TestValidate_RentalLabelsAndNoGuestRule(t *testing.T) {
	today := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	req := validRental()
	assert.Nil(t, Validate(req, today), "rentals do not need a guest count")

	req.EndDate = req.StartDate
	verr := Validate(req, today)
	require.NotNil(t, verr)
	assert.Equal(t, "returnDate", verr.Field)
	assert.Equal(t, "Return date must be after pickup date", verr.Reason)

	req = validRental()
	req.StartDate = "2026-10-18"
	verr = Validate(req, today)
	require.NotNil(t, verr)
	assert.Equal(t, "Pickup date cannot be in the past", verr.Reason)
}

func TestValidate_TodayFollowsLocation(t *testing.T) {
	// 2026-10-19 22:00 UTC is already the 20th in Tokyo.
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, 10, 19, 22, 0, 0, 0, time.UTC).In(tokyo)

	req := validStay()
	req.StartDate = "2026-10-19"
	req.EndDate = "2026-10-21"

	verr := Validate(req, now)
	require.NotNil(t, verr)
	assert.Equal(t, "Check-in date cannot be in the past", verr.Reason)
}

func TestValidate_UnknownKind(t *testing.T) {
	req := validStay()
	req.Kind = "boat"

	verr := Validate(req, time.Now())
	require.NotNil(t, verr)
	assert.Equal(t, "kind", verr.Field)
}

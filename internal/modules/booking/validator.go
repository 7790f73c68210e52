package booking

import (
	"strings"
	"time"

	"staydrive/internal/domain"
)

const reasonRequiredFields = "Please fill in all required fields"

// Validate checks a request against the booking rules in order and returns the
// first failure. today is compared at day granularity.
func Validate(req Request, today time.Time) *ValidationError {
	kd, ok := descriptorFor(req.Kind)
	if !ok {
		return &ValidationError{Field: "kind", Reason: ErrInvalidKind.Error()}
	}
	return validate(kd, req, today)
}

func validate(kd *kindDescriptor, req Request, today time.Time) *ValidationError {
	required := []struct {
		field string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
		{kd.startField, req.StartDate},
		{kd.endField, req.EndDate},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: reasonRequiredFields}
		}
	}

	start, err := time.Parse(domain.DateLayout, strings.TrimSpace(req.StartDate))
	if err != nil {
		return &ValidationError{Field: kd.startField, Reason: kd.startLabel + " date is not a valid date"}
	}
	if start.Before(calendarDay(today)) {
		return &ValidationError{Field: kd.startField, Reason: kd.startLabel + " date cannot be in the past"}
	}

	end, err := time.Parse(domain.DateLayout, strings.TrimSpace(req.EndDate))
	if err != nil {
		return &ValidationError{Field: kd.endField, Reason: kd.endLabel + " date is not a valid date"}
	}
	if !end.After(start) {
		return &ValidationError{
			Field:  kd.endField,
			Reason: kd.endLabel + " date must be after " + strings.ToLower(kd.startLabel) + " date",
		}
	}

	if kd.requiresGuests && req.NumGuests < 1 {
		return &ValidationError{Field: "numGuests", Reason: "Number of guests must be at least 1"}
	}

	return nil
}

// calendarDay drops the time of day, keeping the date as seen in t's location,
// and returns it as a UTC midnight so it compares with parsed request dates.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

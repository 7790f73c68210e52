package booking

import "errors"

var (
	ErrInvalidStatus      = errors.New("Invalid status")
	ErrInvalidKind        = errors.New("Invalid booking kind")
	ErrNotFound           = errors.New("Booking not found")
	ErrUnauthenticated    = errors.New("Sign in to view your bookings")
	ErrSubmissionFailed   = errors.New("Failed to create booking. Please try again.")
	ErrStatusUpdateFailed = errors.New("Failed to update booking status. Please try again.")
)

// ValidationError is a user-correctable problem with a booking request. Its
// message is shown to the customer as is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

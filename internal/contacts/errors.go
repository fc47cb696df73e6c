package contacts

import "errors"

var (
	// ErrDeliveryFailed is returned when the email notification could not
	// be delivered.
	ErrDeliveryFailed = errors.New("contact email delivery failed")

	// ErrPersistenceFailed is returned when the backing store rejected the
	// submission.
	ErrPersistenceFailed = errors.New("contact submission could not be stored")
)

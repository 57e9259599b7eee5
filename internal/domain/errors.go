package domain

import "errors"

var (
	// ErrInvalidRange is returned when a date range ends before it starts
	ErrInvalidRange = errors.New("end date precedes start date")

	// ErrEmptyBatch is returned when an average is requested over zero incidents
	ErrEmptyBatch = errors.New("cannot average an empty incident batch")

	// ErrUnknownLocation is returned when a selection is not in the location registry
	ErrUnknownLocation = errors.New("unknown location")

	// ErrRangeTooLong is returned when a history request spans more days than allowed
	ErrRangeTooLong = errors.New("date range is too long")

	// ErrMissingCredentials is returned by the text generator when no AWS credentials are configured
	ErrMissingCredentials = errors.New("text generation credentials are not configured")
)

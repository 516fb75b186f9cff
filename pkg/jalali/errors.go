package jalali

import "errors"

var (
	// ErrInvalidDate is returned by checked entry points for dates that fail IsValidDate
	ErrInvalidDate = errors.New("jalali: invalid date")
	// ErrUnknownZone wraps zone resolution failures
	ErrUnknownZone = errors.New("jalali: unknown time zone")
	// ErrUnknownNumeralStyle is returned for unrecognized digit styles
	ErrUnknownNumeralStyle = errors.New("jalali: unknown numeral style")
	// ErrInvalidTimestamp is returned when a timestamp string is not an integer
	ErrInvalidTimestamp = errors.New("jalali: invalid timestamp")
)

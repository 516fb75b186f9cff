package jalali

import "time"

// GregorianFields is the wall-clock breakdown of a timestamp in a zone.
type GregorianFields struct {
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday int // 0 = Saturday

	Offset   int // seconds east of UTC
	ZoneAbbr string
	ZoneName string
	DST      bool
}

// WeekdayIndex rotates a Sunday-based time.Weekday to the Saturday-based index.
func WeekdayIndex(w time.Weekday) int {
	return (int(w) + 1) % 7
}

// Decompose splits ts into Gregorian wall-clock fields in loc. A nil loc means UTC.
func Decompose(ts int64, loc *time.Location) GregorianFields {
	if loc == nil {
		loc = time.UTC
	}
	return decomposeTime(time.Unix(ts, 0).In(loc))
}

func decomposeTime(t time.Time) GregorianFields {
	abbr, offset := t.Zone()
	return GregorianFields{
		Year:     t.Year(),
		Month:    int(t.Month()),
		Day:      t.Day(),
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Second:   t.Second(),
		Weekday:  WeekdayIndex(t.Weekday()),
		Offset:   offset,
		ZoneAbbr: abbr,
		ZoneName: t.Location().String(),
		DST:      t.IsDST(),
	}
}

package jalali

import (
	"fmt"
	"time"

	// Zone lookups must work on hosts without a system zoneinfo database.
	_ "time/tzdata"
)

// DefaultZone is used when callers do not name a zone.
const DefaultZone = "Asia/Tehran"

// LoadZone resolves a zone name. An empty name resolves DefaultZone.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, name, err)
	}
	return loc, nil
}

// Mktime returns the Unix timestamp of a Jalali wall-clock time in loc.
// Clock fields outside their usual ranges are normalized as by time.Date.
func Mktime(jy, jm, jd, hour, minute, second int, loc *time.Location) int64 {
	if loc == nil {
		loc = time.UTC
	}
	gy, gm, gd := JalaliToGregorian(jy, jm, jd)
	return time.Date(gy, time.Month(gm), gd, hour, minute, second, 0, loc).Unix()
}

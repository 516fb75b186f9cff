package jalali

// Cumulative Gregorian day counts at the start of each month in a common year.
var gregorianMonthStart = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

const (
	// Jalali and Gregorian absolute day counts differ by this epoch alignment.
	epochOffset = 355666

	cycleDays   = 12053 // 33 Jalali years
	quadDays    = 1461  // 4 years
	quadCentury = 146097
	century     = 36524
)

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func isGregorianLeap(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// GregorianToJalali converts a Gregorian date to the Solar Hijri calendar.
// The input is not validated.
func GregorianToJalali(gy, gm, gd int) (jy, jm, jd int) {
	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}
	monthStart := 0
	if gm >= 1 && gm <= 12 {
		monthStart = gregorianMonthStart[gm-1]
	}

	days := epochOffset + 365*gy +
		floorDiv(gy2+3, 4) - floorDiv(gy2+99, 100) + floorDiv(gy2+399, 400) +
		gd + monthStart

	jy = -1595 + 33*floorDiv(days, cycleDays)
	days = floorMod(days, cycleDays)
	jy += 4 * (days / quadDays)
	days %= quadDays
	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < 186 {
		jm = 1 + days/31
		jd = 1 + days%31
	} else {
		jm = 7 + (days-186)/30
		jd = 1 + (days-186)%30
	}
	return jy, jm, jd
}

// JalaliToGregorian converts a Solar Hijri date to the Gregorian calendar.
// The input is not validated; use IsValidDate first.
func JalaliToGregorian(jy, jm, jd int) (gy, gm, gd int) {
	jy += 1595
	days := -epochOffset - 2 + 365*jy + 8*floorDiv(jy, 33) + (floorMod(jy, 33)+3)/4 + jd
	if jm < 7 {
		days += (jm - 1) * 31
	} else {
		days += (jm-7)*30 + 186
	}

	gy = 400 * floorDiv(days, quadCentury)
	days = floorMod(days, quadCentury)
	if days > century {
		days--
		gy += 100 * (days / century)
		days %= century
		if days >= 365 {
			days++
		}
	}
	gy += 4 * (days / quadDays)
	days %= quadDays
	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd = days + 1
	february := 28
	if isGregorianLeap(gy) {
		february = 29
	}
	lengths := [12]int{31, february, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	gm = 1
	for gm < 12 && gd > lengths[gm-1] {
		gd -= lengths[gm-1]
		gm++
	}
	return gy, gm, gd
}

// IsLeap reports whether jy is a leap year under the 33-year cycle rule.
func IsLeap(jy int) bool {
	return floorMod(floorMod(jy+12, 33), 4) == 1
}

// MonthLength returns the number of days in Jalali month jm of year jy,
// or 0 for a month outside 1-12.
func MonthLength(jy, jm int) int {
	switch {
	case jm >= 1 && jm <= 6:
		return 31
	case jm >= 7 && jm <= 11:
		return 30
	case jm == 12:
		if IsLeap(jy) {
			return 30
		}
		return 29
	}
	return 0
}

// YearLength returns 366 for leap years and 365 otherwise.
func YearLength(jy int) int {
	if IsLeap(jy) {
		return 366
	}
	return 365
}

// DayOfYear returns the 1-based ordinal of (jm, jd) within its year.
func DayOfYear(jm, jd int) int {
	if jm <= 6 {
		return (jm-1)*31 + jd
	}
	return 186 + (jm-7)*30 + jd
}

// IsValidDate reports whether month/day/year is a valid Jalali date. The
// argument order follows checkdate(month, day, year).
func IsValidDate(month, day, year int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= MonthLength(year, month)
}

package jalali

var monthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد",
	"تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر",
	"دی", "بهمن", "اسفند",
}

var monthShortNames = [12]string{
	"فر", "ار", "خر",
	"تی", "مر", "شه",
	"مه", "آب", "آذ",
	"دی", "به", "اس",
}

// Indexed from Saturday.
var weekdayNames = [7]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه",
}

var weekdayShortNames = [7]string{"ش", "ی", "د", "س", "چ", "پ", "ج"}

var dayWords = [31]string{
	"یکم", "دوم", "سوم", "چهارم", "پنجم", "ششم", "هفتم", "هشتم", "نهم", "دهم",
	"یازدهم", "دوازدهم", "سیزدهم", "چهاردهم", "پانزدهم", "شانزدهم", "هفدهم", "هجدهم", "نوزدهم", "بیستم",
	"بیست و یکم", "بیست و دوم", "بیست و سوم", "بیست و چهارم", "بیست و پنجم",
	"بیست و ششم", "بیست و هفتم", "بیست و هشتم", "بیست و نهم", "سی‌ام", "سی و یکم",
}

var seasonNames = [4]string{"بهار", "تابستان", "پاییز", "زمستان"}

const (
	amShort   = "ق.ظ"
	pmShort   = "ب.ظ"
	amLong    = "قبل از ظهر"
	pmLong    = "بعد از ظهر"
	dayPrefix = "ام"
)

func lookup(table []string, i int) string {
	if i < 0 || i >= len(table) {
		return ""
	}
	return table[i]
}

// MonthName returns the name of Jalali month m (1-12), or "" when out of range.
func MonthName(m int) string { return lookup(monthNames[:], m-1) }

// MonthShortName returns the abbreviated name of Jalali month m.
func MonthShortName(m int) string { return lookup(monthShortNames[:], m-1) }

// WeekdayName returns the weekday name for a Saturday-based index (0-6).
func WeekdayName(idx int) string { return lookup(weekdayNames[:], idx) }

// WeekdayShortName returns the one-letter weekday abbreviation.
func WeekdayShortName(idx int) string { return lookup(weekdayShortNames[:], idx) }

// DayWords returns the ordinal word for day d (1-31).
func DayWords(d int) string { return lookup(dayWords[:], d-1) }

// SeasonName returns the season name for a season number (1-4).
func SeasonName(n int) string { return lookup(seasonNames[:], n-1) }

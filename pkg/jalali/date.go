package jalali

import (
	"strconv"
	"time"
)

// Record is the Jalali breakdown of a timestamp.
type Record struct {
	Seconds     int    `json:"seconds"`
	Minutes     int    `json:"minutes"`
	Hours       int    `json:"hours"`
	Day         int    `json:"mday"`
	Weekday     int    `json:"wday"` // 0 = Saturday
	Month       int    `json:"mon"`
	Year        int    `json:"year"`
	DayOfYear   int    `json:"yday"`
	WeekdayName string `json:"weekday"`
	MonthName   string `json:"month"`
	Timestamp   int64  `json:"timestamp"`
}

// RenderedRecord is a Record whose numbers are rendered in a numeral style.
type RenderedRecord struct {
	Seconds     string `json:"seconds"`
	Minutes     string `json:"minutes"`
	Hours       string `json:"hours"`
	Day         string `json:"mday"`
	Weekday     string `json:"wday"`
	Month       string `json:"mon"`
	Year        string `json:"year"`
	DayOfYear   string `json:"yday"`
	WeekdayName string `json:"weekday"`
	MonthName   string `json:"month"`
	Timestamp   string `json:"timestamp"`
}

// GetDate returns the Jalali breakdown of ts in loc. A nil loc means UTC.
func GetDate(ts int64, loc *time.Location) Record {
	g := Decompose(ts, loc)
	jy, jm, jd := GregorianToJalali(g.Year, g.Month, g.Day)
	return Record{
		Seconds:     g.Second,
		Minutes:     g.Minute,
		Hours:       g.Hour,
		Day:         jd,
		Weekday:     g.Weekday,
		Month:       jm,
		Year:        jy,
		DayOfYear:   DayOfYear(jm, jd),
		WeekdayName: WeekdayName(g.Weekday),
		MonthName:   MonthName(jm),
		Timestamp:   ts,
	}
}

// Render converts every numeric field to a string in the given style.
func (r Record) Render(style NumeralStyle) RenderedRecord {
	num := func(n int) string { return Transliterate(strconv.Itoa(n), style) }
	return RenderedRecord{
		Seconds:     num(r.Seconds),
		Minutes:     num(r.Minutes),
		Hours:       num(r.Hours),
		Day:         num(r.Day),
		Weekday:     num(r.Weekday),
		Month:       num(r.Month),
		Year:        num(r.Year),
		DayOfYear:   num(r.DayOfYear),
		WeekdayName: r.WeekdayName,
		MonthName:   r.MonthName,
		Timestamp:   Transliterate(strconv.FormatInt(r.Timestamp, 10), style),
	}
}

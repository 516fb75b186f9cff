package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// moment carries everything a pattern code may need for one timestamp.
type moment struct {
	ts int64
	g  GregorianFields

	year, month, day int
}

func newMoment(t time.Time) *moment {
	g := decomposeTime(t)
	jy, jm, jd := GregorianToJalali(g.Year, g.Month, g.Day)
	return &moment{ts: t.Unix(), g: g, year: jy, month: jm, day: jd}
}

func (m *moment) dayOfYear() int { return DayOfYear(m.month, m.day) }

func (m *moment) hour12() int {
	if h := m.g.Hour % 12; h != 0 {
		return h
	}
	return 12
}

// weekOfYear counts Saturday-start weeks; the week holding 1 Farvardin is week 1.
func (m *moment) weekOfYear() int {
	doy := m.dayOfYear() - 1
	first := floorMod(m.g.Weekday-doy, 7)
	return (doy+first)/7 + 1
}

func (m *moment) offset(sep string) string {
	sign := '+'
	off := m.g.Offset
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("%c%02d%s%02d", sign, off/3600, sep, off%3600/60)
}

type verb func(m *moment) string

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

var verbs = map[rune]verb{
	'Y': func(m *moment) string { return strconv.Itoa(m.year) },
	'y': func(m *moment) string { return pad2(floorMod(m.year, 100)) },
	'm': func(m *moment) string { return pad2(m.month) },
	'n': func(m *moment) string { return strconv.Itoa(m.month) },
	'd': func(m *moment) string { return pad2(m.day) },
	'j': func(m *moment) string { return strconv.Itoa(m.day) },
	'F': func(m *moment) string { return MonthName(m.month) },
	'M': func(m *moment) string { return MonthShortName(m.month) },
	'l': func(m *moment) string { return WeekdayName(m.g.Weekday) },
	'D': func(m *moment) string { return WeekdayShortName(m.g.Weekday) },
	'J': func(m *moment) string { return DayWords(m.day) },
	'S': func(m *moment) string { return dayPrefix },

	'H': func(m *moment) string { return pad2(m.g.Hour) },
	'i': func(m *moment) string { return pad2(m.g.Minute) },
	's': func(m *moment) string { return pad2(m.g.Second) },
	'G': func(m *moment) string { return strconv.Itoa(m.g.Hour) },
	'g': func(m *moment) string { return strconv.Itoa(m.hour12()) },
	'h': func(m *moment) string { return pad2(m.hour12()) },
	'a': func(m *moment) string {
		if m.g.Hour < 12 {
			return amShort
		}
		return pmShort
	},
	'A': func(m *moment) string {
		if m.g.Hour < 12 {
			return amLong
		}
		return pmLong
	},
	'u': func(m *moment) string { return "000000" },
	'v': func(m *moment) string { return "000" },

	'N': func(m *moment) string { return strconv.Itoa(m.g.Weekday + 1) },
	'w': func(m *moment) string { return strconv.Itoa((m.g.Weekday + 1) % 7) },
	'z': func(m *moment) string { return strconv.Itoa(m.dayOfYear()) },
	'K': func(m *moment) string { return strconv.Itoa(YearLength(m.year) - m.dayOfYear()) },
	'W': func(m *moment) string { return pad2(m.weekOfYear()) },
	'b': func(m *moment) string { return strconv.Itoa((m.month-1)/3 + 1) },
	'f': func(m *moment) string { return SeasonName((m.month-1)/3 + 1) },
	'L': func(m *moment) string { return flag(IsLeap(m.year)) },
	't': func(m *moment) string { return strconv.Itoa(MonthLength(m.year, m.month)) },
	'U': func(m *moment) string { return strconv.FormatInt(m.ts, 10) },

	'e': func(m *moment) string { return m.g.ZoneName },
	'T': func(m *moment) string { return m.g.ZoneAbbr },
	'O': func(m *moment) string { return m.offset("") },
	'P': func(m *moment) string { return m.offset(":") },
	'Z': func(m *moment) string { return strconv.Itoa(m.g.Offset) },
	'I': func(m *moment) string { return flag(m.g.DST) },
}

// Codes that expand to another layout.
var composites = map[rune]string{
	'c': "Y/m/d H:i:s P",
	'r': "l، j F Y H:i:s O",
}

func render(b *strings.Builder, layout string, m *moment) {
	escaped := false
	for _, r := range layout {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if exp, ok := composites[r]; ok {
			render(b, exp, m)
			continue
		}
		if v, ok := verbs[r]; ok {
			b.WriteString(v(m))
			continue
		}
		b.WriteRune(r)
	}
}

// FormatTime renders t, in its own location, according to layout.
//
// Each recognized pattern code is replaced by its value; a backslash emits the
// following rune literally and every other rune is copied as is. With the
// Persian style the whole result is transliterated, literal text included.
func FormatTime(layout string, t time.Time, style NumeralStyle) string {
	var b strings.Builder
	b.Grow(len(layout) * 4)
	render(&b, layout, newMoment(t))
	if style == Persian {
		return ToPersian(b.String())
	}
	return b.String()
}

// Format renders the Unix timestamp ts in loc. A nil loc means UTC.
func Format(layout string, ts int64, loc *time.Location, style NumeralStyle) string {
	if loc == nil {
		loc = time.UTC
	}
	return FormatTime(layout, time.Unix(ts, 0).In(loc), style)
}

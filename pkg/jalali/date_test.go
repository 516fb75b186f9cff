package jalali

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayIndex(t *testing.T) {
	want := map[time.Weekday]int{
		time.Saturday:  0,
		time.Sunday:    1,
		time.Monday:    2,
		time.Tuesday:   3,
		time.Wednesday: 4,
		time.Thursday:  5,
		time.Friday:    6,
	}
	for wd, idx := range want {
		assert.Equal(t, idx, WeekdayIndex(wd), wd.String())
	}
}

func TestDecompose(t *testing.T) {
	g := Decompose(nowruz1403+3723, nil)

	assert.Equal(t, GregorianFields{
		Year: 2024, Month: 3, Day: 20,
		Hour: 1, Minute: 2, Second: 3,
		Weekday:  4,
		Offset:   0,
		ZoneAbbr: "UTC",
		ZoneName: "UTC",
	}, g)
}

func TestDecomposeInZone(t *testing.T) {
	g := Decompose(nowruz1403, tehran(t))
	assert.Equal(t, 3, g.Hour)
	assert.Equal(t, 30, g.Minute)
	assert.Equal(t, 12600, g.Offset)
	assert.False(t, g.DST)
}

func TestGetDate(t *testing.T) {
	r := GetDate(nowruz1403+45296, time.UTC)

	assert.Equal(t, Record{
		Seconds:     56,
		Minutes:     34,
		Hours:       12,
		Day:         1,
		Weekday:     4,
		Month:       1,
		Year:        1403,
		DayOfYear:   1,
		WeekdayName: "چهارشنبه",
		MonthName:   "فروردین",
		Timestamp:   nowruz1403 + 45296,
	}, r)
}

func TestRecordRender(t *testing.T) {
	r := GetDate(lastDayOf1403, time.UTC)

	fa := r.Render(Persian)
	assert.Equal(t, "۱۴۰۳", fa.Year)
	assert.Equal(t, "۱۲", fa.Month)
	assert.Equal(t, "۳۰", fa.Day)
	assert.Equal(t, "۳۶۶", fa.DayOfYear)
	assert.Equal(t, "۰", fa.Seconds)
	assert.Equal(t, "اسفند", fa.MonthName)
	assert.Equal(t, ToPersian("1742428800"), fa.Timestamp)

	en := r.Render(Latin)
	assert.Equal(t, "1403", en.Year)
	assert.Equal(t, "366", en.DayOfYear)
}

func TestLoadZone(t *testing.T) {
	loc, err := LoadZone("")
	require.NoError(t, err)
	assert.Equal(t, DefaultZone, loc.String())

	_, err = LoadZone("Mars/Olympus_Mons")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownZone))
}

func TestMktime(t *testing.T) {
	assert.Equal(t, nowruz1403, Mktime(1403, 1, 1, 0, 0, 0, time.UTC))
	assert.Equal(t, lastDayOf1403, Mktime(1403, 12, 30, 0, 0, 0, nil))
	assert.Equal(t, nowruz1403-12600, Mktime(1403, 1, 1, 0, 0, 0, tehran(t)))

	// clock overflow rolls into the next day
	assert.Equal(t, nowruz1403+86400, Mktime(1403, 1, 1, 24, 0, 0, time.UTC))

	for _, ts := range []int64{0, nowruz1403, lastDayOf1403, 1e9} {
		r := GetDate(ts, time.UTC)
		assert.Equal(t, ts, Mktime(r.Year, r.Month, r.Day, r.Hours, r.Minutes, r.Seconds, time.UTC))
	}
}

func TestLexiconBounds(t *testing.T) {
	assert.Equal(t, "اسفند", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
	assert.Equal(t, "جمعه", WeekdayName(6))
	assert.Equal(t, "", WeekdayName(7))
	assert.Equal(t, "سی و یکم", DayWords(31))
	assert.Equal(t, "", DayWords(32))
	assert.Equal(t, "زمستان", SeasonName(4))
	assert.Equal(t, "", SeasonName(0))
}

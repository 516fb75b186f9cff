package jalali

import (
	"math"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	nowruz1403     = int64(1710892800) // 2024-03-20 00:00:00 UTC, Wednesday
	lastDayOf1403  = int64(1742428800) // 2025-03-20 00:00:00 UTC
	fridayAfterNow = nowruz1403 + 2*86400
)

func tehran(t *testing.T) *time.Location {
	t.Helper()
	loc, err := LoadZone("Asia/Tehran")
	require.NoError(t, err)
	return loc
}

func TestFormatCodes(t *testing.T) {
	afternoon := nowruz1403 + 15*3600 + 5*60 + 9

	tests := []struct {
		name   string
		layout string
		ts     int64
		want   string
	}{
		{"date", "Y/m/d", nowruz1403, "1403/01/01"},
		{"unpadded date", "Y-n-j", nowruz1403, "1403-1-1"},
		{"short year", "y", nowruz1403, "03"},
		{"names", "l j F Y", nowruz1403, "چهارشنبه 1 فروردین 1403"},
		{"abbreviations", "D M", nowruz1403, "چ فر"},
		{"day words", "J S", nowruz1403, "یکم ام"},
		{"clock", "H:i:s", afternoon, "15:05:09"},
		{"twelve hour", "g h G", afternoon, "3 03 15"},
		{"twelve hour at midnight", "g", nowruz1403, "12"},
		{"am", "a A", nowruz1403, "ق.ظ قبل از ظهر"},
		{"pm", "a A", afternoon, "ب.ظ بعد از ظهر"},
		{"weekday numbers wednesday", "N w", nowruz1403, "5 5"},
		{"weekday numbers friday", "N w l D", fridayAfterNow, "7 0 جمعه ج"},
		{"day of year", "z K", nowruz1403, "1 365"},
		{"leap and month length", "L t", nowruz1403, "1 31"},
		{"last day of leap year", "Y/m/d z K L t", lastDayOf1403, "1403/12/30 366 0 1 30"},
		{"season", "b f", nowruz1403, "1 بهار"},
		{"week of year", "W", nowruz1403, "01"},
		{"week rolls on saturday", "W l", nowruz1403 + 3*86400, "02 شنبه"},
		{"timestamp", "U", nowruz1403, "1710892800"},
		{"utc zone", "e T O P Z I", nowruz1403, "UTC UTC +0000 +00:00 0 0"},
		{"fractions", "u v", nowruz1403, "000000 000"},
		{"composite c", "c", nowruz1403, "1403/01/01 00:00:00 +00:00"},
		{"composite r", "r", nowruz1403, "چهارشنبه، 1 فروردین 1403 00:00:00 +0000"},
		{"unknown codes pass through", "x-Q-k", nowruz1403, "x-Q-k"},
		{"persian literal text", "امروز Y", nowruz1403, "امروز 1403"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.layout, tt.ts, time.UTC, Latin))
		})
	}
}

func TestFormatEscapes(t *testing.T) {
	assert.Equal(t, "Y", Format(`\Y`, nowruz1403, nil, Latin))
	assert.Equal(t, `\`, Format(`\\`, nowruz1403, nil, Latin))
	assert.Equal(t, "Year 1403", Format(`\Y\e\a\r Y`, nowruz1403, nil, Latin))
	assert.Equal(t, "1403", Format(`Y\`, nowruz1403, nil, Latin))
	assert.Equal(t, "c", Format(`\c`, nowruz1403, nil, Latin))
}

func TestFormatPersianDigits(t *testing.T) {
	assert.Equal(t, "۱۴۰۳/۰۱/۰۱", Format("Y/m/d", nowruz1403, time.UTC, Persian))
	assert.Equal(t, "۱ فروردین ۱۴۰۳", Format("j F Y", nowruz1403, time.UTC, Persian))
}

func TestFormatInTehran(t *testing.T) {
	loc := tehran(t)

	assert.Equal(t, "1403/01/01 03:30", Format("Y/m/d H:i", nowruz1403, loc, Latin))
	assert.Equal(t, "+0330 +03:30 12600", Format("O P Z", nowruz1403, loc, Latin))
	assert.Equal(t, "Asia/Tehran", Format("e", nowruz1403, loc, Latin))

	// 20:30 UTC on 2024-03-19 is already Nowruz in Tehran.
	assert.Equal(t, "1403/01/01 00:00", Format("Y/m/d H:i", nowruz1403-3*3600-30*60, loc, Latin))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "1403/01/01 12", FormatTime("Y/m/d H", ts, Latin))
	assert.Equal(t, "ب.ظ", FormatTime("a", ts, Latin))
}

func TestFormatDateShape(t *testing.T) {
	shape := regexp.MustCompile(`^-?\d+/\d{2}/\d{2}$`)
	rng := rand.New(rand.NewSource(7))

	stamps := []int64{0, -1, nowruz1403, math.MaxInt32, math.MinInt32, -62135596800, 253402300799}
	for i := 0; i < 2000; i++ {
		stamps = append(stamps, rng.Int63n(2e11)-1e11)
	}

	loc := tehran(t)
	for _, ts := range stamps {
		for _, l := range []*time.Location{time.UTC, loc} {
			out := Format("Y/m/d", ts, l, Latin)
			require.Regexp(t, shape, out, "timestamp %d", ts)
		}
	}
}

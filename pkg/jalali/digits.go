package jalali

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// NumeralStyle selects the digit glyphs used in rendered output
type NumeralStyle int

const (
	// Latin renders 0-9 and '.'
	Latin NumeralStyle = iota
	// Persian renders ۰-۹ and '٫'
	Persian
)

// String returns the short language code for the style
func (s NumeralStyle) String() string {
	if s == Persian {
		return "fa"
	}
	return "en"
}

var (
	latinDigits   = [11]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.'}
	persianDigits = [11]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹', '٫'}
)

func toPersianRune(r rune) rune {
	if r >= '0' && r <= '9' {
		return persianDigits[r-'0']
	}
	if r == '.' {
		return persianDigits[10]
	}
	return r
}

func toLatinRune(r rune) rune {
	if r >= '۰' && r <= '۹' {
		return latinDigits[r-'۰']
	}
	if r == '٫' {
		return latinDigits[10]
	}
	return r
}

// ToPersian replaces Latin digits and the decimal point with their Persian glyphs.
func ToPersian(s string) string {
	return strings.Map(toPersianRune, s)
}

// ToLatin replaces Persian digits and the Persian decimal separator with ASCII.
func ToLatin(s string) string {
	return strings.Map(toLatinRune, s)
}

// Transliterate rewrites the digits of s into the target style.
func Transliterate(s string, target NumeralStyle) string {
	if target == Persian {
		return ToPersian(s)
	}
	return ToLatin(s)
}

// ParseNumeralStyle accepts a style name ("persian", "latin") or a BCP 47 tag.
// Persian-language tags and tags carrying the "arabext" numbering system select
// Persian digits; every other well-formed tag selects Latin digits.
func ParseNumeralStyle(s string) (NumeralStyle, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "persian", "farsi":
		return Persian, nil
	case "latin", "latn", "english":
		return Latin, nil
	case "":
		return Latin, fmt.Errorf("%w: empty value", ErrUnknownNumeralStyle)
	}

	tag, err := language.Parse(v)
	if err != nil {
		return Latin, fmt.Errorf("%w: %q", ErrUnknownNumeralStyle, s)
	}

	switch tag.TypeForKey("nu") {
	case "arabext":
		return Persian, nil
	case "latn":
		return Latin, nil
	}

	if base, _ := tag.Base(); base.String() == "fa" {
		return Persian, nil
	}
	return Latin, nil
}

// ParseTimestamp parses a Unix timestamp that may be written with Persian digits.
func ParseTimestamp(s string) (int64, error) {
	ts, err := strconv.ParseInt(strings.TrimSpace(ToLatin(s)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return ts, nil
}

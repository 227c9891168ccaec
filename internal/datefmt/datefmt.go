// Package datefmt normalizes free-form dates into YYYY-MM-DD.
//
// Four layouts are accepted, with surrounding spaces ignored:
//
//	2022-02-03         Y-M-D
//	2/3/2022           M/D/Y
//	February 3, 2022   MONTH DAY, YEAR (case-insensitive)
//	Feb 3, 2022        MON DAY, YEAR   (case-insensitive)
//
// Years must fall in [1900, 2099] and days in [1, 31]. Day counts are not
// checked against the month, so February 31 is accepted.
package datefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidFormat  = errors.New("date does not match any supported layout")
	ErrYearOutOfRange = errors.New("year is not in the range [1900, 2099]")
	ErrInvalidMonth   = errors.New("invalid month")
	ErrDayOutOfRange  = errors.New("day is not in the range [1, 31]")
)

const (
	MinYear = 1900
	MaxYear = 2099
)

var monthNames = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

var monthAbbrs = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4,
	"may": 5, "jun": 6, "jul": 7, "aug": 8,
	"sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Date is a validated calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the canonical YYYY-MM-DD form
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Reformat parses input and returns it as YYYY-MM-DD
func Reformat(input string) (string, error) {
	d, _, err := Parse(input)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// Parse tokenizes input, picks the layout from its delimiter pattern and
// validates the year, month and day fields.
func Parse(input string) (Date, Layout, error) {
	tokens := Tokenize(input)

	structural := false
	for _, tok := range tokens {
		if tok.Kind == TokenDelim {
			structural = true
			break
		}
	}
	if len(tokens) < 4 || !structural {
		return Date{}, LayoutUnknown, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
	}

	f, ok := dispatch(tokens)
	if !ok {
		return Date{}, LayoutUnknown, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
	}

	d, err := validate(f.year, f.month, f.day)
	if err != nil {
		return Date{}, f.layout, err
	}
	return d, f.layout, nil
}

func validate(year, month, day string) (Date, error) {
	y, err := parseYear(year)
	if err != nil {
		return Date{}, err
	}
	m, err := parseMonth(month)
	if err != nil {
		return Date{}, err
	}
	d, err := parseDay(day)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: y, Month: m, Day: d}, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseYear(s string) (int, error) {
	if len(s) != 4 || !allDigits(s) {
		return 0, fmt.Errorf("%w: %q", ErrYearOutOfRange, s)
	}
	y, _ := strconv.Atoi(s)
	if y < MinYear || y > MaxYear {
		return 0, fmt.Errorf("%w: %d", ErrYearOutOfRange, y)
	}
	return y, nil
}

func parseMonth(s string) (int, error) {
	lower := strings.ToLower(s)

	switch {
	case len(lower) <= 2:
		if len(lower) == 1 {
			lower = "0" + lower
		}
		if !allDigits(lower) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
		}
		m, _ := strconv.Atoi(lower)
		if m < 1 || m > 12 {
			return 0, fmt.Errorf("%w: %d is not in the range [1, 12]", ErrInvalidMonth, m)
		}
		return m, nil
	case len(lower) == 3:
		if m, ok := monthAbbrs[lower]; ok {
			return m, nil
		}
		return 0, fmt.Errorf("%w: %q is not a month abbreviation", ErrInvalidMonth, s)
	default:
		if m, ok := monthNames[lower]; ok {
			return m, nil
		}
		return 0, fmt.Errorf("%w: %q is not a month name", ErrInvalidMonth, s)
	}
}

func parseDay(s string) (int, error) {
	if len(s) == 1 {
		s = "0" + s
	}
	if len(s) != 2 || !allDigits(s) {
		return 0, fmt.Errorf("%w: %q", ErrDayOutOfRange, s)
	}
	d, _ := strconv.Atoi(s)
	if d < 1 || d > 31 {
		return 0, fmt.Errorf("%w: %d", ErrDayOutOfRange, d)
	}
	return d, nil
}

package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// CE returns the astronomical year of a Common Era year, which is unchanged.
func CE(year int) int { return year }

// AD is the same as CE.
func AD(year int) int { return year }

// BCE maps year N before the Common Era to the astronomical year 1-N, so
// 1 BCE is year 0.
func BCE(year int) int { return 1 - year }

// BC is the same as BCE.
func BC(year int) int { return 1 - year }

// AM converts a 12-hour morning hour to 24-hour time. 12 AM is midnight.
func AM(hour int) (int, error) {
	if hour < 1 || hour > 12 {
		return 0, fieldError("civil", "hour", float64(hour), 1, 12)
	}
	if hour == 12 {
		return 0, nil
	}
	return hour, nil
}

// PM converts a 12-hour afternoon hour to 24-hour time. 12 PM is noon.
func PM(hour int) (int, error) {
	if hour < 1 || hour > 12 {
		return 0, fieldError("civil", "hour", float64(hour), 1, 12)
	}
	if hour == 12 {
		return 12, nil
	}
	return hour + 12, nil
}

// ParseYear reads a year with an optional era suffix ("1776", "1776 CE",
// "44 BCE", "44BC") and returns the astronomical year.
func ParseYear(s string) (int, error) {
	num, era := splitSuffix(s)
	year, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("%w: year %q", ErrInvalidField, s)
	}
	switch era {
	case "", "CE", "AD":
		return year, nil
	case "BCE", "BC":
		if year < 1 {
			return 0, fmt.Errorf("%w: year %d BCE", ErrInvalidField, year)
		}
		return BCE(year), nil
	}
	return 0, fmt.Errorf("%w: era %q", ErrInvalidField, era)
}

// ParseHour reads "2 pm", "12am" or a bare 24-hour value and returns the
// hour in 24-hour time.
func ParseHour(s string) (int, error) {
	num, meridiem := splitSuffix(s)
	hour, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("%w: hour %q", ErrInvalidField, s)
	}
	switch meridiem {
	case "AM":
		return AM(hour)
	case "PM":
		return PM(hour)
	case "":
		if hour < 0 || hour > 23 {
			return 0, fieldError("civil", "hour", float64(hour), 0, 23)
		}
		return hour, nil
	}
	return 0, fmt.Errorf("%w: meridiem %q", ErrInvalidField, meridiem)
}

// splitSuffix separates a leading signed integer from a trailing word,
// upper-casing the word.
func splitSuffix(s string) (num, suffix string) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(s[i:], ".", "")))
}

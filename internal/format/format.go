// Package format renders calendar dates as text and parses them back.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zapponejosh/khronos/internal/calendar"
)

// eras holds the suffixes for years after and before each calendar's epoch.
// Calendars without an entry print the raw signed year.
var eras = map[string][2]string{
	"gregorian": {"CE", "BCE"},
	"julian":    {"AD", "BC"},
	"hebrew":    {"AM", "AM"},
	"islamic":   {"AH", "BH"},
}

// Era returns the display year and era suffix for an astronomical year.
// Years at or below zero are shown as 1-year with the "before" suffix.
func Era(cal calendar.Calendar, year int) (int, string) {
	e, ok := eras[cal.Name()]
	if !ok {
		return year, ""
	}
	if year <= 0 {
		return 1 - year, e[1]
	}
	return year, e[0]
}

// Date renders a date as "Thursday, July 4 1776 CE, 02:30:00 pm".
func Date(d calendar.Date) string {
	return Day(d) + ", " + Clock(d.Fields())
}

// Day renders the date without the time: "Thursday, July 4 1776 CE".
func Day(d calendar.Date) string {
	f := d.Fields()
	month, err := d.Calendar().MonthName(f.Month)
	if err != nil {
		month = strconv.Itoa(f.Month)
	}
	year, era := Era(d.Calendar(), f.Year)

	s := fmt.Sprintf("%s, %s %d %d", calendar.WeekdayOf(d), month, f.Day, year)
	if era != "" {
		s += " " + era
	}
	return s
}

// Clock renders the time of day on a 12-hour clock: "02:30:00 pm".
func Clock(f calendar.Fields) string {
	meridiem := "am"
	if f.Hour >= 12 {
		meridiem = "pm"
	}
	hour := f.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d:%02d %s", hour, f.Minute, int(f.Second), meridiem)
}

// ISO renders a date as "1776-07-04T14:30:00" with a signed, zero-padded
// astronomical year. Fractional seconds are kept to the millisecond.
func ISO(d calendar.Date) string {
	f := d.Fields()
	year := fmt.Sprintf("%04d", f.Year)
	if f.Year < 0 {
		year = fmt.Sprintf("-%04d", -f.Year)
	}
	sec := fmt.Sprintf("%02d", int(f.Second))
	if frac := f.Second - float64(int(f.Second)); frac != 0 {
		sec = fmt.Sprintf("%06.3f", f.Second)
	}
	return fmt.Sprintf("%s-%02d-%02dT%02d:%02d:%s", year, f.Month, f.Day, f.Hour, f.Minute, sec)
}

// Parse reads a date in the ISO form produced by ISO. The time part is
// optional; "2024-10-03", "2024-10-03T18:30" and "-0043-03-15T12:00:00.5"
// are all accepted.
func Parse(cal calendar.Calendar, s string) (calendar.Date, error) {
	f, err := parseFields(s)
	if err != nil {
		return nil, err
	}
	return calendar.New(cal, f)
}

func parseFields(s string) (calendar.Fields, error) {
	var f calendar.Fields
	bad := func() (calendar.Fields, error) {
		return calendar.Fields{}, fmt.Errorf("%w: cannot parse %q as YYYY-MM-DD[THH:MM[:SS]]", calendar.ErrInvalidField, s)
	}

	datePart, timePart, hasTime := strings.Cut(strings.TrimSpace(s), "T")
	if !hasTime {
		datePart, timePart, hasTime = strings.Cut(datePart, " ")
	}

	sign := 1
	if strings.HasPrefix(datePart, "-") {
		sign = -1
		datePart = datePart[1:]
	}
	ymd := strings.Split(datePart, "-")
	if len(ymd) != 3 {
		return bad()
	}
	nums := make([]int, 3)
	for i, p := range ymd {
		n, err := strconv.Atoi(p)
		if err != nil || p == "" || p[0] == '+' {
			return bad()
		}
		nums[i] = n
	}
	f.Year, f.Month, f.Day = sign*nums[0], nums[1], nums[2]

	if !hasTime {
		return f, nil
	}
	hms := strings.Split(timePart, ":")
	if len(hms) < 2 || len(hms) > 3 {
		return bad()
	}
	var err error
	if f.Hour, err = strconv.Atoi(hms[0]); err != nil {
		return bad()
	}
	if f.Minute, err = strconv.Atoi(hms[1]); err != nil {
		return bad()
	}
	if len(hms) == 3 {
		if f.Second, err = strconv.ParseFloat(hms[2], 64); err != nil {
			return bad()
		}
	}
	return f, nil
}

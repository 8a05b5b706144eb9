// Package calendar converts dates between the Gregorian, Julian, Hebrew,
// Islamic and Vulcan calendars.
//
// Every calendar converts to and from the astronomical Julian Day (JD), a
// continuous day count whose .5 values fall on midnight. Dates in different
// calendars are compared, subtracted and converted only through their JD.
package calendar

import (
	"fmt"
	"strings"
)

// Calendar is the conversion capability implemented once per calendar system.
type Calendar interface {
	// Name returns the lower-case calendar name ("gregorian", "hebrew", ...).
	Name() string

	// ToJD converts a date in this calendar to a Julian Day.
	// Out-of-range fields return an error wrapping ErrInvalidField.
	ToJD(year, month, day, hour, minute int, second float64) (JD, error)

	// FromJD converts a Julian Day to a date in this calendar.
	// Days before the calendar's supported floor return ErrOutOfRange.
	FromJD(jd JD) (Fields, error)

	IsLeapYear(year int) bool
	MonthsInYear(year int) int
	DaysInMonth(year, month int) int

	// MonthName returns the display name of a month, or ErrInvalidField.
	MonthName(month int) (string, error)
}

// Date is implemented by every calendar date type.
type Date interface {
	Calendar() Calendar
	JD() JD
	Fields() Fields
}

// Fields is the plain (year, month, day, hour, minute, second) tuple of a
// calendar date. Years use astronomical numbering: 1 BCE is year 0.
type Fields struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`
}

// Compare orders two tuples lexicographically by year, month, day, hour,
// minute and second. It returns -1, 0 or +1.
func (f Fields) Compare(o Fields) int {
	for _, c := range [...][2]int{
		{f.Year, o.Year},
		{f.Month, o.Month},
		{f.Day, o.Day},
		{f.Hour, o.Hour},
		{f.Minute, o.Minute},
	} {
		if c[0] != c[1] {
			if c[0] < c[1] {
				return -1
			}
			return 1
		}
	}
	switch {
	case f.Second < o.Second:
		return -1
	case f.Second > o.Second:
		return 1
	}
	return 0
}

// String renders the tuple as "2006-01-02 15:04:05" with a signed year.
func (f Fields) String() string {
	year := fmt.Sprintf("%04d", f.Year)
	if f.Year < 0 {
		year = fmt.Sprintf("-%04d", -f.Year)
	}
	return fmt.Sprintf("%s-%02d-%02d %02d:%02d:%s", year, f.Month, f.Day, f.Hour, f.Minute, formatSecond(f.Second))
}

func formatSecond(s float64) string {
	if s == float64(int(s)) {
		return fmt.Sprintf("%02d", int(s))
	}
	return fmt.Sprintf("%06.3f", s)
}

// All returns every supported calendar in a stable order.
func All() []Calendar {
	return []Calendar{
		GregorianCalendar,
		JulianCalendar,
		HebrewCalendar,
		IslamicCalendar,
		VulcanCalendar,
	}
}

// Lookup finds a calendar by its case-insensitive name.
func Lookup(name string) (Calendar, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, c := range All() {
		if c.Name() == want {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
}

// New builds a validated date in the given calendar.
func New(cal Calendar, f Fields) (Date, error) {
	switch cal.Name() {
	case gregorianName:
		return NewGregorianTime(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	case julianName:
		return NewJulianTime(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	case hebrewName:
		return NewHebrewTime(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	case islamicName:
		return NewIslamicTime(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	case vulcanName:
		return NewVulcanTime(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, cal.Name())
}

// FromJD builds the date in cal that falls on jd.
func FromJD(cal Calendar, jd JD) (Date, error) {
	f, err := cal.FromJD(jd)
	if err != nil {
		return nil, err
	}
	return New(cal, f)
}

// Convert re-expresses d in another calendar.
func Convert(d Date, to Calendar) (Date, error) {
	return FromJD(to, d.JD())
}

// Add applies an offset to any date, keeping its calendar.
func Add(d Date, o Offset) (Date, error) {
	f, err := shift(d.Calendar(), d.Fields(), d.JD(), o)
	if err != nil {
		return nil, err
	}
	return New(d.Calendar(), f)
}

// Compare orders two dates chronologically through their Julian Days,
// regardless of calendar.
func Compare(a, b Date) int {
	return a.JD().Compare(b.JD())
}

// Diff returns the signed number of days from b to a.
func Diff(a, b Date) float64 {
	return a.JD().Sub(b.JD())
}

// WeekdayOf returns the civil day of week of any date.
func WeekdayOf(d Date) Weekday {
	return d.JD().Weekday()
}

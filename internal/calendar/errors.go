package calendar

import (
	"errors"
	"fmt"
	"math"
)

// maxFieldYear bounds year fields before any day counting so that the
// integer formulas cannot overflow. MaxJD is the tighter limit.
const maxFieldYear = 100_000_000

var (
	// ErrInvalidField is returned when a date field is outside its valid range.
	ErrInvalidField = errors.New("invalid calendar field")

	// ErrOutOfRange is returned when a Julian Day falls before the first day a
	// calendar can represent.
	ErrOutOfRange = errors.New("julian day out of calendar range")

	// ErrInternalInvariant signals a disagreement between two conversion
	// formulas that must always agree. It indicates a bug, not bad input.
	ErrInternalInvariant = errors.New("internal invariant violated")

	// ErrUnknownCalendar is returned by Lookup for an unsupported calendar name.
	ErrUnknownCalendar = errors.New("unknown calendar")
)

// FieldError describes a rejected date field.
type FieldError struct {
	Calendar string
	Field    string
	Value    float64
	Min      float64
	Max      float64
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s %v outside [%v, %v]", ErrInvalidField, e.Calendar, e.Field, e.Value, e.Min, e.Max)
}

// Unwrap lets errors.Is match ErrInvalidField.
func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

// IsInvalidField checks if an error is an invalid field error.
func IsInvalidField(err error) bool {
	return errors.Is(err, ErrInvalidField)
}

// IsOutOfRange checks if an error is an out-of-range error.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

func fieldError(cal, field string, value, min, max float64) error {
	return &FieldError{Calendar: cal, Field: field, Value: value, Min: min, Max: max}
}

func outOfRange(cal string, jd JD) error {
	if jd > MaxJD {
		return fmt.Errorf("%w: %s after %s ceiling", ErrOutOfRange, jd, cal)
	}
	return fmt.Errorf("%w: %s before %s floor", ErrOutOfRange, jd, cal)
}

// inRange reports whether jd lies in [floor, MaxJD]. NaN is never in range.
func inRange(jd, floor JD) bool {
	return jd >= floor && jd <= MaxJD
}

// belowCeiling passes jd through unless it lies past MaxJD, in which case
// the year is rejected.
func belowCeiling(cal Calendar, year int, jd JD) (JD, error) {
	if jd > MaxJD {
		last, _ := cal.FromJD(MaxJD)
		return 0, fieldError(cal.Name(), "year", float64(year), math.Inf(-1), float64(last.Year))
	}
	return jd, nil
}

// validateFields checks month, day and clock fields against a calendar's
// tables. Year floors are checked by each calendar.
func validateFields(cal Calendar, year, month, day, hour, minute int, second float64) error {
	name := cal.Name()
	if year < -maxFieldYear || year > maxFieldYear {
		return fieldError(name, "year", float64(year), -maxFieldYear, maxFieldYear)
	}
	if n := cal.MonthsInYear(year); month < 1 || month > n {
		return fieldError(name, "month", float64(month), 1, float64(n))
	}
	if n := cal.DaysInMonth(year, month); day < 1 || day > n {
		return fieldError(name, "day", float64(day), 1, float64(n))
	}
	if hour < 0 || hour > 23 {
		return fieldError(name, "hour", float64(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return fieldError(name, "minute", float64(minute), 0, 59)
	}
	// Leap seconds allowed; 61 and above rejected.
	if !(second >= 0 && second < 61) {
		return fieldError(name, "second", second, 0, 60.999)
	}
	return nil
}

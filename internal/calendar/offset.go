package calendar

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Unit tags which calendar field an Offset targets.
type Unit int

const (
	UnitDays Unit = iota
	UnitWeeks
	UnitMonths
	UnitMonthsReal
	UnitYears
	UnitYearsReal
)

var unitNames = map[Unit]string{
	UnitDays:       "days",
	UnitWeeks:      "weeks",
	UnitMonths:     "months",
	UnitMonthsReal: "months_real",
	UnitYears:      "years",
	UnitYearsReal:  "years_real",
}

func (u Unit) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit maps a unit name such as "weeks" or "years_real" to its Unit.
func ParseUnit(s string) (Unit, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for u, name := range unitNames {
		if name == want {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: unit %q", ErrInvalidField, s)
}

// Offset is a quantity of days, weeks, months or years to add to a date.
// Adding one month is not the same as adding thirty days.
type Offset struct {
	Unit  Unit
	Value float64
}

func Days(n int) Offset { return Offset{UnitDays, float64(n)} }
func Weeks(n int) Offset { return Offset{UnitWeeks, float64(n)} }
func Months(n int) Offset { return Offset{UnitMonths, float64(n)} }
func Years(n int) Offset { return Offset{UnitYears, float64(n)} }
func MonthsReal(x float64) Offset { return Offset{UnitMonthsReal, x} }
func YearsReal(x float64) Offset { return Offset{UnitYearsReal, x} }

// Neg returns the offset with its sign flipped.
func (o Offset) Neg() Offset {
	return Offset{o.Unit, -o.Value}
}

func (o Offset) String() string {
	return fmt.Sprintf("%g %s", o.Value, o.Unit)
}

// monthOrder lets month arithmetic walk a calendar's months in year order,
// which for the Hebrew calendar starts at Tishri rather than month 1.
type monthOrder interface {
	monthIndex(year, month int) int
	monthAt(year, index int) int
	// monthCycle reports a whole number of years holding a fixed number of
	// months.
	monthCycle() (years, months int)
}

// civilMonths is the month order of every calendar whose year starts at
// month 1 and always has twelve months.
type civilMonths struct{}

func (civilMonths) monthIndex(_, month int) int { return month - 1 }
func (civilMonths) monthAt(_, index int) int { return index + 1 }
func (civilMonths) monthCycle() (years, months int) { return 1, 12 }

// shift applies an offset to a date's fields and returns the new fields.
// Zero offsets return f unchanged.
func shift(cal Calendar, f Fields, jd JD, o Offset) (Fields, error) {
	if o.Value == 0 {
		return f, nil
	}
	if o.Unit == UnitMonths || o.Unit == UnitYears {
		if o.Value != math.Trunc(o.Value) {
			return Fields{}, fmt.Errorf("%w: %s takes a whole number, got %v", ErrInvalidField, o.Unit, o.Value)
		}
		// Anything larger lands past every calendar's ceiling.
		if math.Abs(o.Value) > 13*maxFieldYear {
			return Fields{}, fmt.Errorf("%w: %s %s %s", ErrOutOfRange, cal.Name(), f, o)
		}
	}
	var out Fields
	switch o.Unit {
	case UnitMonths:
		out = addMonths(cal, f, int(o.Value))
	case UnitYears:
		out = addYears(cal, f, int(o.Value))
	default:
		return cal.FromJD(jd.Add(o))
	}
	if _, err := cal.ToJD(out.Year, out.Month, out.Day, out.Hour, out.Minute, out.Second); err != nil {
		var fe *FieldError
		if errors.As(err, &fe) && fe.Field == "year" {
			return Fields{}, fmt.Errorf("%w: %s %s %s", ErrOutOfRange, cal.Name(), f, o)
		}
		return Fields{}, err
	}
	return out, nil
}

// addMonths moves n months through the calendar's month order, carrying
// into the year, then clamps the day to the length of the target month.
func addMonths(cal Calendar, f Fields, n int) Fields {
	order, ok := cal.(monthOrder)
	if !ok {
		order = civilMonths{}
	}
	cycleYears, cycleMonths := order.monthCycle()

	year := f.Year
	idx := order.monthIndex(year, f.Month) + n

	year += idx / cycleMonths * cycleYears
	idx %= cycleMonths
	for idx < 0 {
		year--
		idx += cal.MonthsInYear(year)
	}
	for idx >= cal.MonthsInYear(year) {
		idx -= cal.MonthsInYear(year)
		year++
	}

	f.Year = year
	f.Month = order.monthAt(year, idx)
	f.Day = min(f.Day, cal.DaysInMonth(f.Year, f.Month))
	return f
}

// addYears keeps month and day, moving a leap month to the last month of a
// shorter target year and clamping the day to the month length.
func addYears(cal Calendar, f Fields, n int) Fields {
	f.Year += n
	if last := cal.MonthsInYear(f.Year); f.Month > last {
		f.Month = last
	}
	f.Day = min(f.Day, cal.DaysInMonth(f.Year, f.Month))
	return f
}

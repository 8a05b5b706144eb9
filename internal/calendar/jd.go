package calendar

import (
	"math"
	"strconv"
)

// JD is an astronomical Julian Day: days since noon, 1 January 4713 BC
// (proleptic Julian). Midnight falls on .5.
type JD float64

const (
	// EarthOrbitalPeriodDays is the mean year used by the approximate
	// year and month offsets.
	EarthOrbitalPeriodDays = 365.256363004

	// MinJD is the earliest supported Julian Day, Gregorian -4799-01-01.
	MinJD JD = -31738.5

	// MaxJD is the latest supported Julian Day, Gregorian 2733194-11-27 at noon.
	MaxJD JD = 1e9
)

// Sub returns the signed number of days from o to jd.
func (jd JD) Sub(o JD) float64 {
	return float64(jd - o)
}

// Add shifts the Julian Day by an offset. Days and weeks are exact. Months
// and years use the mean orbital period and ignore calendar rules.
func (jd JD) Add(o Offset) JD {
	switch o.Unit {
	case UnitDays:
		return jd + JD(o.Value)
	case UnitWeeks:
		return jd + JD(7*o.Value)
	case UnitMonths, UnitMonthsReal:
		return jd + JD(o.Value*EarthOrbitalPeriodDays/12)
	case UnitYears, UnitYearsReal:
		return jd + JD(o.Value*EarthOrbitalPeriodDays)
	}
	return jd
}

// Compare returns -1, 0 or +1. Equality is exact.
func (jd JD) Compare(o JD) int {
	switch {
	case jd < o:
		return -1
	case jd > o:
		return 1
	}
	return 0
}

func (jd JD) Before(o JD) bool { return jd < o }
func (jd JD) After(o JD) bool { return jd > o }
func (jd JD) Equal(o JD) bool { return jd == o }

// JDN returns the integer Julian Day Number of the civil day containing jd.
func (jd JD) JDN() int64 {
	return int64(math.Floor(float64(jd) + 0.5))
}

// Midnight returns the JD of the start of the civil day containing jd.
func (jd JD) Midnight() JD {
	return JD(math.Floor(float64(jd)-0.5) + 0.5)
}

// TimeOfDay splits jd into the midnight that starts its day and the clock
// time since then. A time that rounds up to 24:00 rolls into the next day.
func (jd JD) TimeOfDay() (midnight JD, hour, minute int, second float64) {
	midnight = jd.Midnight()
	hour, minute, second = FromFraction(float64(jd - midnight))
	if hour >= 24 {
		return midnight + 1, 0, 0, 0
	}
	return midnight, hour, minute, second
}

// Weekday returns the civil day of the week, Monday first.
func (jd JD) Weekday() Weekday {
	return Weekday(floorMod(jd.JDN(), 7))
}

func (jd JD) String() string {
	return "JD " + strconv.FormatFloat(float64(jd), 'f', -1, 64)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - b*floorDiv(a, b)
}

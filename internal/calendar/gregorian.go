package calendar

import (
	"fmt"
	"math"
)

const gregorianName = "gregorian"

// GregorianEpoch is the Julian Day of Gregorian 0001-01-01 at midnight.
const GregorianEpoch JD = 1721425.5

var civilDaysInMonth = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

type gregorianCalendar struct{ civilMonths }

// GregorianCalendar is the proleptic Gregorian calendar.
var GregorianCalendar Calendar = gregorianCalendar{}

func (gregorianCalendar) Name() string { return gregorianName }

func (gregorianCalendar) IsLeapYear(year int) bool { return IsGregorianLeapYear(year) }

func (gregorianCalendar) MonthsInYear(int) int { return 12 }

func (gregorianCalendar) DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == February && IsGregorianLeapYear(year) {
		return 29
	}
	return civilDaysInMonth[month]
}

func (gregorianCalendar) MonthName(month int) (string, error) {
	return lookupName(gregorianName, civilMonthNames, month)
}

func (gregorianCalendar) ToJD(year, month, day, hour, minute int, second float64) (JD, error) {
	return GregorianToJD(year, month, day, hour, minute, second)
}

func (gregorianCalendar) FromJD(jd JD) (Fields, error) {
	return JDToGregorian(jd)
}

// IsGregorianLeapYear reports whether year is divisible by 4 and not by 100,
// unless also divisible by 400.
func IsGregorianLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// GregorianToJD converts a Gregorian date to a Julian Day. Years must be
// greater than -4800.
func GregorianToJD(year, month, day, hour, minute int, second float64) (JD, error) {
	if year <= -4800 {
		return 0, fieldError(gregorianName, "year", float64(year), -4799, math.Inf(1))
	}
	if err := validateFields(GregorianCalendar, year, month, day, hour, minute, second); err != nil {
		return 0, err
	}

	jdn := gregorianJDN(year, month, day)
	realJD := gregorianRealJD(year, month, day)
	if float64(jdn)-0.5 != realJD {
		return 0, fmt.Errorf("%w: gregorian %d-%d-%d gives JDN %d and JD %v", ErrInternalInvariant, year, month, day, jdn, realJD)
	}
	return belowCeiling(GregorianCalendar, year, JD(float64(jdn)-0.5)+JD(ToFraction(hour, minute, second)))
}

// gregorianJDN is the integer Julian Day Number of a Gregorian date.
// Valid for year > -4800.
func gregorianJDN(year, month, day int) int64 {
	a := int64((14 - month) / 12)
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	return int64(day) + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// gregorianRealJD computes the midnight Julian Day from the epoch with
// real-valued arithmetic. It must agree with gregorianJDN.
func gregorianRealJD(year, month, day int) float64 {
	y := float64(year - 1)
	adj := 0.0
	if month > 2 {
		adj = -2
		if IsGregorianLeapYear(year) {
			adj = -1
		}
	}
	return float64(GregorianEpoch) - 1 +
		365*y + math.Floor(y/4) - math.Floor(y/100) + math.Floor(y/400) +
		math.Floor((367*float64(month)-362)/12+adj) +
		float64(day)
}

// JDToGregorian converts a Julian Day to a Gregorian date.
func JDToGregorian(jd JD) (Fields, error) {
	if !inRange(jd, MinJD) {
		return Fields{}, outOfRange(gregorianName, jd)
	}
	midnight, hour, minute, second := jd.TimeOfDay()
	jdn := midnight.JDN()

	// Days since the epoch split into 400, 100, 4 and 1 year cycles.
	depoch := jdn - GregorianEpoch.JDN()
	quadricent := floorDiv(depoch, 146097)
	dqc := floorMod(depoch, 146097)
	cent := dqc / 36524
	dcent := dqc % 36524
	quad := dcent / 1461
	dquad := dcent % 1461
	yindex := dquad / 365

	year := int(quadricent*400 + cent*100 + quad*4 + yindex)
	if cent != 4 && yindex != 4 {
		year++
	}

	yearday := jdn - gregorianJDN(year, January, 1)
	var leapadj int64
	if jdn >= gregorianJDN(year, March, 1) {
		leapadj = 2
		if IsGregorianLeapYear(year) {
			leapadj = 1
		}
	}
	month := int(((yearday+leapadj)*12 + 373) / 367)
	day := int(jdn-gregorianJDN(year, month, 1)) + 1

	return ymdhms(year, month, day, hour, minute, second), nil
}

// Gregorian is a date in the proleptic Gregorian calendar.
type Gregorian struct{ date }

// NewGregorian returns the Gregorian date at midnight.
func NewGregorian(year, month, day int) (Gregorian, error) {
	return NewGregorianTime(year, month, day, 0, 0, 0)
}

// NewGregorianTime returns the Gregorian date and time.
func NewGregorianTime(year, month, day, hour, minute int, second float64) (Gregorian, error) {
	d, err := makeDate(GregorianCalendar, ymdhms(year, month, day, hour, minute, second))
	return Gregorian{d}, err
}

// GregorianFromJD returns the Gregorian date that falls on jd.
func GregorianFromJD(jd JD) (Gregorian, error) {
	d, err := dateFromJD(GregorianCalendar, jd)
	return Gregorian{d}, err
}

// ToGregorian converts a date in any calendar to Gregorian.
func ToGregorian(d Date) (Gregorian, error) {
	return GregorianFromJD(d.JD())
}

// GregorianNow returns the current Gregorian date according to c.
func GregorianNow(c Clock, mode NowMode) (Gregorian, error) {
	jd, err := Now(c, mode)
	if err != nil {
		return Gregorian{}, err
	}
	return GregorianFromJD(jd)
}

func (g Gregorian) Calendar() Calendar { return GregorianCalendar }

// MonthName returns the name of the date's month.
func (g Gregorian) MonthName() string {
	name, _ := CivilMonthName(g.f.Month)
	return name
}

// Add returns the date shifted by o. Months carry into the year and clamp
// the day to the target month; years turn Feb 29 into Feb 28 in common years.
func (g Gregorian) Add(o Offset) (Gregorian, error) {
	d, err := shifted(GregorianCalendar, g.date, o)
	return Gregorian{d}, err
}

// Sub returns the date shifted back by o.
func (g Gregorian) Sub(o Offset) (Gregorian, error) {
	return g.Add(o.Neg())
}

// Compare orders dates by year, month, day, hour, minute and second.
func (g Gregorian) Compare(o Gregorian) int { return g.f.Compare(o.f) }

func (g Gregorian) Equal(o Gregorian) bool { return g.Compare(o) == 0 }
func (g Gregorian) Before(o Gregorian) bool { return g.Compare(o) < 0 }
func (g Gregorian) After(o Gregorian) bool { return g.Compare(o) > 0 }

// DaysSince returns the signed number of days from o to g.
func (g Gregorian) DaysSince(o Date) float64 { return g.jd.Sub(o.JD()) }

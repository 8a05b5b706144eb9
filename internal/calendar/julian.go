package calendar

import "math"

const julianName = "julian"

// JulianEpoch is the Julian Day of Julian calendar 0001-01-01 at midnight.
const JulianEpoch JD = 1721423.5

type julianCalendar struct{ civilMonths }

// JulianCalendar is the proleptic Julian calendar.
var JulianCalendar Calendar = julianCalendar{}

func (julianCalendar) Name() string { return julianName }

func (julianCalendar) IsLeapYear(year int) bool { return IsJulianLeapYear(year) }

func (julianCalendar) MonthsInYear(int) int { return 12 }

func (julianCalendar) DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == February && IsJulianLeapYear(year) {
		return 29
	}
	return civilDaysInMonth[month]
}

func (julianCalendar) MonthName(month int) (string, error) {
	return lookupName(julianName, civilMonthNames, month)
}

func (julianCalendar) ToJD(year, month, day, hour, minute int, second float64) (JD, error) {
	return JulianToJD(year, month, day, hour, minute, second)
}

func (julianCalendar) FromJD(jd JD) (Fields, error) {
	return JDToJulian(jd)
}

// IsJulianLeapYear reports whether year is divisible by 4.
func IsJulianLeapYear(year int) bool {
	return floorMod(int64(year), 4) == 0
}

// JulianToJD converts a Julian calendar date to a Julian Day.
func JulianToJD(year, month, day, hour, minute int, second float64) (JD, error) {
	if year <= -4800 {
		return 0, fieldError(julianName, "year", float64(year), -4799, math.Inf(1))
	}
	if err := validateFields(JulianCalendar, year, month, day, hour, minute, second); err != nil {
		return 0, err
	}
	midnight := JD(float64(julianJDN(year, month, day)) - 0.5)
	if midnight < MinJD {
		return 0, fieldError(julianName, "year", float64(year), -4799, math.Inf(1))
	}
	return belowCeiling(JulianCalendar, year, midnight+JD(ToFraction(hour, minute, second)))
}

func julianJDN(year, month, day int) int64 {
	a := int64((14 - month) / 12)
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	return int64(day) + (153*m+2)/5 + 365*y + y/4 - 32083
}

// JDToJulian converts a Julian Day to a Julian calendar date.
func JDToJulian(jd JD) (Fields, error) {
	if !inRange(jd, MinJD) {
		return Fields{}, outOfRange(julianName, jd)
	}
	midnight, hour, minute, second := jd.TimeOfDay()

	b := float64(midnight.JDN() + 1524)
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := int(b - d - math.Floor(30.6001*e))
	month := int(e) - 1
	if e >= 14 {
		month = int(e) - 13
	}
	year := int(c) - 4715
	if month > 2 {
		year = int(c) - 4716
	}
	return ymdhms(year, month, day, hour, minute, second), nil
}

// Julian is a date in the proleptic Julian calendar.
type Julian struct{ date }

// NewJulian returns the Julian calendar date at midnight.
func NewJulian(year, month, day int) (Julian, error) {
	return NewJulianTime(year, month, day, 0, 0, 0)
}

// NewJulianTime returns the Julian calendar date and time.
func NewJulianTime(year, month, day, hour, minute int, second float64) (Julian, error) {
	d, err := makeDate(JulianCalendar, ymdhms(year, month, day, hour, minute, second))
	return Julian{d}, err
}

// JulianFromJD returns the Julian date holding jd.
func JulianFromJD(jd JD) (Julian, error) {
	d, err := dateFromJD(JulianCalendar, jd)
	return Julian{d}, err
}

// ToJulian converts a date in any calendar to the Julian calendar.
func ToJulian(d Date) (Julian, error) {
	return JulianFromJD(d.JD())
}

// JulianNow returns the current Julian date according to c.
func JulianNow(c Clock, mode NowMode) (Julian, error) {
	jd, err := Now(c, mode)
	if err != nil {
		return Julian{}, err
	}
	return JulianFromJD(jd)
}

func (j Julian) Calendar() Calendar { return JulianCalendar }

// MonthName returns the name of the date's month.
func (j Julian) MonthName() string {
	name, _ := CivilMonthName(j.f.Month)
	return name
}

// Add returns the date shifted by o, clamping the day when months or
// years land on a shorter month.
func (j Julian) Add(o Offset) (Julian, error) {
	d, err := shifted(JulianCalendar, j.date, o)
	return Julian{d}, err
}

// Sub returns the date shifted back by o.
func (j Julian) Sub(o Offset) (Julian, error) {
	return j.Add(o.Neg())
}

// Compare orders dates by year, month, day, hour, minute and second.
func (j Julian) Compare(o Julian) int { return j.f.Compare(o.f) }
func (j Julian) Equal(o Julian) bool { return j.Compare(o) == 0 }
func (j Julian) Before(o Julian) bool { return j.Compare(o) < 0 }
func (j Julian) After(o Julian) bool { return j.Compare(o) > 0 }

// DaysSince returns the signed number of days from o to the date.
func (j Julian) DaysSince(o Date) float64 { return j.jd.Sub(o.JD()) }

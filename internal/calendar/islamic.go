package calendar

import "math"

const islamicName = "islamic"

// IslamicEpoch is the Julian Day of 1 Muharram AH 1 (Julian 622-07-16).
const IslamicEpoch JD = 1948439.5

type islamicCalendar struct{ civilMonths }

// IslamicCalendar is the tabular (arithmetic) Islamic calendar with a
// 30-year leap cycle.
var IslamicCalendar Calendar = islamicCalendar{}

func (islamicCalendar) Name() string { return islamicName }

func (islamicCalendar) IsLeapYear(year int) bool { return IsIslamicLeapYear(year) }

func (islamicCalendar) MonthsInYear(int) int { return 12 }

// DaysInMonth alternates 30 and 29 days, with a 30-day Dhu I-Hijja in leap
// years.
func (islamicCalendar) DaysInMonth(year, month int) int {
	switch {
	case month < 1 || month > 12:
		return 0
	case month%2 == 1, month == DhulHijja && IsIslamicLeapYear(year):
		return 30
	}
	return 29
}

func (islamicCalendar) MonthName(month int) (string, error) {
	return lookupName(islamicName, islamicMonthNames, month)
}

func (islamicCalendar) ToJD(year, month, day, hour, minute int, second float64) (JD, error) {
	return IslamicToJD(year, month, day, hour, minute, second)
}

func (islamicCalendar) FromJD(jd JD) (Fields, error) {
	return JDToIslamic(jd)
}

// IsIslamicLeapYear reports whether year has 355 days.
func IsIslamicLeapYear(year int) bool {
	return floorMod(11*int64(year)+14, 30) < 11
}

func islamicJDN(year, month, day int) int64 {
	y := int64(year)
	// ceil(29.5 * (month-1))
	monthDays := (59*int64(month-1) + 1) / 2
	return int64(day) + monthDays + (y-1)*354 + floorDiv(3+11*y, 30) + IslamicEpoch.JDN() - 1
}

// IslamicToJD converts an Islamic date to a Julian Day. Years before AH 1
// count backwards through the same cycle.
func IslamicToJD(year, month, day, hour, minute int, second float64) (JD, error) {
	if err := validateFields(IslamicCalendar, year, month, day, hour, minute, second); err != nil {
		return 0, err
	}
	midnight := JD(float64(islamicJDN(year, month, day)) - 0.5)
	if midnight < MinJD {
		return 0, fieldError(islamicName, "year", float64(year), -5587, math.Inf(1))
	}
	return belowCeiling(IslamicCalendar, year, midnight+JD(ToFraction(hour, minute, second)))
}

// JDToIslamic converts a Julian Day to an Islamic date.
func JDToIslamic(jd JD) (Fields, error) {
	if !inRange(jd, MinJD) {
		return Fields{}, outOfRange(islamicName, jd)
	}
	midnight, hour, minute, second := jd.TimeOfDay()
	jdn := midnight.JDN()

	year := int(floorDiv(30*(jdn-IslamicEpoch.JDN())+10646, 10631))
	// Months average 29.5 days from the start of the year.
	month := min(12, int(floorDiv(2*(jdn-islamicJDN(year, Muharram, 1)), 59))+1)
	day := int(jdn-islamicJDN(year, month, 1)) + 1

	return ymdhms(year, month, day, hour, minute, second), nil
}

// Islamic is a date in the tabular Islamic calendar.
type Islamic struct{ date }

// NewIslamic returns the Islamic date at midnight.
func NewIslamic(year, month, day int) (Islamic, error) {
	return NewIslamicTime(year, month, day, 0, 0, 0)
}

// NewIslamicTime returns the Islamic date and time. Seconds may be fractional.
func NewIslamicTime(year, month, day, hour, minute int, second float64) (Islamic, error) {
	d, err := makeDate(IslamicCalendar, ymdhms(year, month, day, hour, minute, second))
	return Islamic{d}, err
}

// IslamicFromJD returns the Islamic date holding jd.
func IslamicFromJD(jd JD) (Islamic, error) {
	d, err := dateFromJD(IslamicCalendar, jd)
	return Islamic{d}, err
}

// ToIslamic converts a date in any calendar to the Islamic calendar.
func ToIslamic(d Date) (Islamic, error) {
	return IslamicFromJD(d.JD())
}

// IslamicNow returns the current Islamic date according to c.
func IslamicNow(c Clock, mode NowMode) (Islamic, error) {
	jd, err := Now(c, mode)
	if err != nil {
		return Islamic{}, err
	}
	return IslamicFromJD(jd)
}

func (i Islamic) Calendar() Calendar { return IslamicCalendar }

// MonthName returns the name of the date's month.
func (i Islamic) MonthName() string {
	name, _ := IslamicCalendar.MonthName(i.f.Month)
	return name
}

// Add returns the date shifted by o, clamping the day when months or
// years land on a shorter month.
func (i Islamic) Add(o Offset) (Islamic, error) {
	d, err := shifted(IslamicCalendar, i.date, o)
	return Islamic{d}, err
}

// Sub returns the date shifted back by o.
func (i Islamic) Sub(o Offset) (Islamic, error) {
	return i.Add(o.Neg())
}

// Compare orders dates by year, month, day, hour, minute and second.
func (i Islamic) Compare(o Islamic) int { return i.f.Compare(o.f) }
func (i Islamic) Equal(o Islamic) bool { return i.Compare(o) == 0 }
func (i Islamic) Before(o Islamic) bool { return i.Compare(o) < 0 }
func (i Islamic) After(o Islamic) bool { return i.Compare(o) > 0 }

// DaysSince returns the signed number of days from o to the date.
func (i Islamic) DaysSince(o Date) float64 { return i.jd.Sub(o.JD()) }

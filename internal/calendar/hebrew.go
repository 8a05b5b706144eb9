package calendar

import "math"

const hebrewName = "hebrew"

// HebrewEpoch anchors the Hebrew new-year computation. 1 Tishri AM 1 falls
// two days later.
const HebrewEpoch JD = 347995.5

type hebrewCalendar struct{}

// HebrewCalendar is the arithmetic Hebrew calendar. Month 1 is Nisan and the
// year number changes on 1 Tishri (month 7).
var HebrewCalendar Calendar = hebrewCalendar{}

func (hebrewCalendar) Name() string { return hebrewName }

func (hebrewCalendar) IsLeapYear(year int) bool { return IsHebrewLeapYear(year) }

func (hebrewCalendar) MonthsInYear(year int) int {
	if IsHebrewLeapYear(year) {
		return 13
	}
	return 12
}

// DaysInMonth handles the fixed 29-day months, Adar in common years, and
// Heshvan and Kislev which depend on the length of the year.
func (h hebrewCalendar) DaysInMonth(year, month int) int {
	if month < 1 || month > h.MonthsInYear(year) {
		return 0
	}
	switch month {
	case Iyyar, Tammuz, Elul, Teveth, Veadar:
		return 29
	case Adar:
		if !IsHebrewLeapYear(year) {
			return 29
		}
	case Heshvan:
		if HebrewYearDays(year)%10 != 5 {
			return 29
		}
	case Kislev:
		if HebrewYearDays(year)%10 == 3 {
			return 29
		}
	}
	return 30
}

func (hebrewCalendar) MonthName(month int) (string, error) {
	return lookupName(hebrewName, hebrewMonthNames, month)
}

func (hebrewCalendar) ToJD(year, month, day, hour, minute int, second float64) (JD, error) {
	return HebrewToJD(year, month, day, hour, minute, second)
}

func (hebrewCalendar) FromJD(jd JD) (Fields, error) {
	return JDToHebrew(jd)
}

// Month arithmetic walks Tishri..Elul, so Elul plus one month is Tishri of
// the next year.
func (h hebrewCalendar) monthIndex(year, month int) int {
	if month >= Tishri {
		return month - Tishri
	}
	return h.MonthsInYear(year) - Tishri + month
}

func (h hebrewCalendar) monthAt(year, index int) int {
	if n := h.MonthsInYear(year) - Tishri + 1; index >= n {
		return index - n + 1
	}
	return index + Tishri
}

// Every 19 consecutive years hold 7 leap years.
func (hebrewCalendar) monthCycle() (years, months int) { return 19, 235 }

// IsHebrewLeapYear reports whether year falls in the 3rd, 6th, 8th, 11th,
// 14th, 17th or 19th year of the Metonic cycle.
func IsHebrewLeapYear(year int) bool {
	return floorMod(7*int64(year)+1, 19) < 7
}

// HebrewYearDays returns the length of a Hebrew year: 353-355 days in
// common years, 383-385 in leap years.
func HebrewYearDays(year int) int {
	return int(hebrewNewYear(year+1) - hebrewNewYear(year))
}

// hebrewDelay1 returns the days from the epoch to the molad of Tishri,
// moved forward a day when it falls on Sunday, Wednesday or Friday.
func hebrewDelay1(year int64) int64 {
	months := floorDiv(235*year-234, 19)
	parts := 12084 + 13753*months
	day := months*29 + floorDiv(parts, 25920)
	if floorMod(3*(day+1), 7) < 3 {
		day++
	}
	return day
}

// hebrewDelay2 keeps the year length within the allowed range by pushing
// the new year out one or two days.
func hebrewDelay2(year int64) int64 {
	last := hebrewDelay1(year - 1)
	present := hebrewDelay1(year)
	next := hebrewDelay1(year + 1)
	switch {
	case next-present == 356:
		return 2
	case present-last == 382:
		return 1
	}
	return 0
}

// hebrewNewYear returns the Julian Day Number of 1 Tishri.
func hebrewNewYear(year int) int64 {
	y := int64(year)
	return HebrewEpoch.JDN() + hebrewDelay1(y) + hebrewDelay2(y) + 2
}

func hebrewJDN(year, month, day int) int64 {
	jdn := hebrewNewYear(year) + int64(day) - 1
	if month < Tishri {
		for m := Tishri; m <= HebrewCalendar.MonthsInYear(year); m++ {
			jdn += int64(HebrewCalendar.DaysInMonth(year, m))
		}
		for m := Nisan; m < month; m++ {
			jdn += int64(HebrewCalendar.DaysInMonth(year, m))
		}
		return jdn
	}
	for m := Tishri; m < month; m++ {
		jdn += int64(HebrewCalendar.DaysInMonth(year, m))
	}
	return jdn
}

// HebrewToJD converts a Hebrew date to a Julian Day. Years start at 1.
func HebrewToJD(year, month, day, hour, minute int, second float64) (JD, error) {
	if year < 1 {
		return 0, fieldError(hebrewName, "year", float64(year), 1, math.Inf(1))
	}
	if err := validateFields(HebrewCalendar, year, month, day, hour, minute, second); err != nil {
		return 0, err
	}
	return belowCeiling(HebrewCalendar, year, JD(float64(hebrewJDN(year, month, day))-0.5)+JD(ToFraction(hour, minute, second)))
}

// hebrewMinJD is 1 Tishri AM 1.
var hebrewMinJD = JD(float64(hebrewNewYear(1)) - 0.5)

// JDToHebrew converts a Julian Day to a Hebrew date.
func JDToHebrew(jd JD) (Fields, error) {
	if !inRange(jd, hebrewMinJD) {
		return Fields{}, outOfRange(hebrewName, jd)
	}
	midnight, hour, minute, second := jd.TimeOfDay()
	jdn := midnight.JDN()

	// Start a year early from the mean year length and walk forward.
	count := floorDiv((jdn-HebrewEpoch.JDN())*98496, 35975351)
	year := int(count) - 1
	for jdn >= hebrewNewYear(year+1) {
		year++
	}

	month := Tishri
	if jdn >= hebrewJDN(year, Nisan, 1) {
		month = Nisan
	}
	for jdn > hebrewJDN(year, month, HebrewCalendar.DaysInMonth(year, month)) {
		month++
	}
	day := int(jdn-hebrewJDN(year, month, 1)) + 1

	return ymdhms(year, month, day, hour, minute, second), nil
}

// Hebrew is a date in the Hebrew calendar.
type Hebrew struct{ date }

// NewHebrew returns the Hebrew date at midnight.
func NewHebrew(year, month, day int) (Hebrew, error) {
	return NewHebrewTime(year, month, day, 0, 0, 0)
}

// NewHebrewTime returns the Hebrew date and time. Seconds may be fractional.
func NewHebrewTime(year, month, day, hour, minute int, second float64) (Hebrew, error) {
	d, err := makeDate(HebrewCalendar, ymdhms(year, month, day, hour, minute, second))
	return Hebrew{d}, err
}

// HebrewFromJD returns the Hebrew date holding jd.
func HebrewFromJD(jd JD) (Hebrew, error) {
	d, err := dateFromJD(HebrewCalendar, jd)
	return Hebrew{d}, err
}

// ToHebrew converts a date in any calendar to Hebrew.
func ToHebrew(d Date) (Hebrew, error) {
	return HebrewFromJD(d.JD())
}

// HebrewNow returns the current Hebrew date according to c.
func HebrewNow(c Clock, mode NowMode) (Hebrew, error) {
	jd, err := Now(c, mode)
	if err != nil {
		return Hebrew{}, err
	}
	return HebrewFromJD(jd)
}

func (h Hebrew) Calendar() Calendar { return HebrewCalendar }

// MonthName returns the name of the date's month.
func (h Hebrew) MonthName() string {
	name, _ := HebrewCalendar.MonthName(h.f.Month)
	return name
}

// Add returns the date shifted by o. Month steps follow the order of the
// Hebrew year; adding years to Veadar lands on Adar in common years.
func (h Hebrew) Add(o Offset) (Hebrew, error) {
	d, err := shifted(HebrewCalendar, h.date, o)
	return Hebrew{d}, err
}

// Sub returns the date shifted back by o.
func (h Hebrew) Sub(o Offset) (Hebrew, error) {
	return h.Add(o.Neg())
}

// Compare orders dates by their numeric fields, so Nisan (month 1) sorts
// before Tishri (month 7) of the same year number.
func (h Hebrew) Compare(o Hebrew) int { return h.f.Compare(o.f) }
func (h Hebrew) Equal(o Hebrew) bool { return h.Compare(o) == 0 }
func (h Hebrew) Before(o Hebrew) bool { return h.Compare(o) < 0 }
func (h Hebrew) After(o Hebrew) bool { return h.Compare(o) > 0 }

// DaysSince returns the signed number of days from o to the date.
func (h Hebrew) DaysSince(o Date) float64 { return h.jd.Sub(o.JD()) }

package calendar

import "math"

const vulcanName = "vulcan"

// VulcanEpoch is the Julian Day of 1 Z'at year 1.
const VulcanEpoch JD = 173651.5

const (
	VulcanDaysPerMonth  = 21
	VulcanMonthsPerYear = 12
	VulcanDaysPerYear   = VulcanDaysPerMonth * VulcanMonthsPerYear
)

type vulcanCalendar struct{ civilMonths }

// VulcanCalendar has twelve 21-day months and no leap years.
var VulcanCalendar Calendar = vulcanCalendar{}

func (vulcanCalendar) Name() string { return vulcanName }

func (vulcanCalendar) IsLeapYear(int) bool { return false }

func (vulcanCalendar) MonthsInYear(int) int { return VulcanMonthsPerYear }

func (vulcanCalendar) DaysInMonth(_, month int) int {
	if month < 1 || month > VulcanMonthsPerYear {
		return 0
	}
	return VulcanDaysPerMonth
}

func (vulcanCalendar) MonthName(month int) (string, error) {
	return lookupName(vulcanName, vulcanMonthNames, month)
}

func (vulcanCalendar) ToJD(year, month, day, hour, minute int, second float64) (JD, error) {
	return VulcanToJD(year, month, day, hour, minute, second)
}

func (vulcanCalendar) FromJD(jd JD) (Fields, error) {
	return JDToVulcan(jd)
}

func vulcanJDN(year, month, day int) int64 {
	return VulcanEpoch.JDN() +
		int64(year-1)*VulcanDaysPerYear +
		int64(month-1)*VulcanDaysPerMonth +
		int64(day-1)
}

// VulcanToJD converts a Vulcan date to a Julian Day.
func VulcanToJD(year, month, day, hour, minute int, second float64) (JD, error) {
	if err := validateFields(VulcanCalendar, year, month, day, hour, minute, second); err != nil {
		return 0, err
	}
	midnight := JD(float64(vulcanJDN(year, month, day)) - 0.5)
	if midnight < MinJD {
		return 0, fieldError(vulcanName, "year", float64(year), -815, math.Inf(1))
	}
	return belowCeiling(VulcanCalendar, year, midnight+JD(ToFraction(hour, minute, second)))
}

// JDToVulcan converts a Julian Day to a Vulcan date.
func JDToVulcan(jd JD) (Fields, error) {
	if !inRange(jd, MinJD) {
		return Fields{}, outOfRange(vulcanName, jd)
	}
	midnight, hour, minute, second := jd.TimeOfDay()

	n := midnight.JDN() - VulcanEpoch.JDN()
	year := int(floorDiv(n, VulcanDaysPerYear)) + 1
	rem := int(floorMod(n, VulcanDaysPerYear))

	return ymdhms(year, rem/VulcanDaysPerMonth+1, rem%VulcanDaysPerMonth+1, hour, minute, second), nil
}

// Vulcan is a date in the Vulcan calendar.
type Vulcan struct{ date }

// NewVulcan returns the Vulcan date at midnight.
func NewVulcan(year, month, day int) (Vulcan, error) {
	return NewVulcanTime(year, month, day, 0, 0, 0)
}

// NewVulcanTime returns the Vulcan date and time. Seconds may be fractional.
func NewVulcanTime(year, month, day, hour, minute int, second float64) (Vulcan, error) {
	d, err := makeDate(VulcanCalendar, ymdhms(year, month, day, hour, minute, second))
	return Vulcan{d}, err
}

// VulcanFromJD returns the Vulcan date holding jd.
func VulcanFromJD(jd JD) (Vulcan, error) {
	d, err := dateFromJD(VulcanCalendar, jd)
	return Vulcan{d}, err
}

// ToVulcan converts a date in any calendar to the Vulcan calendar.
func ToVulcan(d Date) (Vulcan, error) {
	return VulcanFromJD(d.JD())
}

// VulcanNow returns the current Vulcan date according to c.
func VulcanNow(c Clock, mode NowMode) (Vulcan, error) {
	jd, err := Now(c, mode)
	if err != nil {
		return Vulcan{}, err
	}
	return VulcanFromJD(jd)
}

func (v Vulcan) Calendar() Calendar { return VulcanCalendar }

// MonthName returns the name of the date's month.
func (v Vulcan) MonthName() string {
	name, _ := VulcanCalendar.MonthName(v.f.Month)
	return name
}

// Add returns the date shifted by o. Every Vulcan month has 21 days, so
// month and year steps never clamp.
func (v Vulcan) Add(o Offset) (Vulcan, error) {
	d, err := shifted(VulcanCalendar, v.date, o)
	return Vulcan{d}, err
}

// Sub returns the date shifted back by o.
func (v Vulcan) Sub(o Offset) (Vulcan, error) {
	return v.Add(o.Neg())
}

// Compare orders dates by year, month, day, hour, minute and second.
func (v Vulcan) Compare(o Vulcan) int { return v.f.Compare(o.f) }
func (v Vulcan) Equal(o Vulcan) bool { return v.Compare(o) == 0 }
func (v Vulcan) Before(o Vulcan) bool { return v.Compare(o) < 0 }
func (v Vulcan) After(o Vulcan) bool { return v.Compare(o) > 0 }

// DaysSince returns the signed number of days from o to the date.
func (v Vulcan) DaysSince(o Date) float64 { return v.jd.Sub(o.JD()) }

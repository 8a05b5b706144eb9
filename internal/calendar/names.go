package calendar

import "fmt"

// Weekday is a civil day of the week, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var weekdayShortNames = [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// WeekdayName returns the long name of a weekday index in [0, 6].
func WeekdayName(i int) (string, error) {
	if i < 0 || i >= len(weekdayNames) {
		return "", fieldError("civil", "weekday", float64(i), 0, 6)
	}
	return weekdayNames[i], nil
}

// WeekdayShortName returns the three-letter name of a weekday index in [0, 6].
func WeekdayShortName(i int) (string, error) {
	if i < 0 || i >= len(weekdayShortNames) {
		return "", fieldError("civil", "weekday", float64(i), 0, 6)
	}
	return weekdayShortNames[i], nil
}

// Civil (Gregorian and Julian) months.
const (
	January = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var civilMonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var civilMonthShortNames = []string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// Hebrew months. Nisan is month 1 but the year begins with Tishri.
const (
	Nisan = iota + 1
	Iyyar
	Sivan
	Tammuz
	Av
	Elul
	Tishri
	Heshvan
	Kislev
	Teveth
	Shevat
	Adar
	Veadar
)

var hebrewMonthNames = []string{
	"Nisan", "Iyyar", "Sivan", "Tammuz", "Av", "Elul",
	"Tishri", "Heshvan", "Kislev", "Teveth", "Shevat", "Adar", "Veadar",
}

// Islamic months.
const (
	Muharram = iota + 1
	Safar
	RabiAlAwwal
	RabiAthThani
	JumadaAlUla
	JumadaAthThania
	Rajab
	Shaban
	Ramadan
	Shawwal
	DhulQadah
	DhulHijja
)

var islamicMonthNames = []string{
	"Muharram", "Safar", "Rabi'al-Awwal", "Rabi'ath-Thani", "Jumada I-Ula", "Jumada t-Tania",
	"Rajab", "Sha'ban", "Ramadan", "Shawwal", "Dhu I-Qa'da", "Dhu I-Hijja",
}

var vulcanMonthNames = []string{
	"Z'at", "D'ruh", "K'riBrax", "re'T'Khutai", "T'keKhuti", "Khuti",
	"Ta'Krat", "K'ri'lior", "et'khior", "T'lakht", "T'ke'Tas", "Tasmeen",
}

// CivilMonthName returns the long name of a Gregorian or Julian month.
func CivilMonthName(month int) (string, error) {
	return lookupName("civil", civilMonthNames, month)
}

// CivilMonthShortName returns the three-letter name of a civil month.
func CivilMonthShortName(month int) (string, error) {
	return lookupName("civil", civilMonthShortNames, month)
}

func lookupName(cal string, names []string, month int) (string, error) {
	if month < 1 || month > len(names) {
		return "", fieldError(cal, "month", float64(month), 1, float64(len(names)))
	}
	return names[month-1], nil
}

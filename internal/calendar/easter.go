package calendar

import "math"

// GregorianEaster calculates the date of Easter Sunday for a given year
// using the computus algorithm for the Gregorian calendar.
//
// The algorithm is based on the method described by J.M. Oudin (1940).
func GregorianEaster(year int) (Gregorian, error) {
	if year < 1 {
		return Gregorian{}, fieldError(gregorianName, "year", float64(year), 1, math.Inf(1))
	}
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return NewGregorian(year, month, day)
}

// JulianEaster calculates Easter Sunday in the Julian calendar, as kept by
// the Orthodox churches (Meeus).
func JulianEaster(year int) (Julian, error) {
	if year < 1 {
		return Julian{}, fieldError(julianName, "year", float64(year), 1, math.Inf(1))
	}
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := ((d + e + 114) % 31) + 1

	return NewJulian(year, month, day)
}

// AdventSunday returns the first Sunday of Advent, the Sunday falling
// between November 27 and December 3.
func AdventSunday(year int) (Gregorian, error) {
	nov30, err := NewGregorian(year, November, 30)
	if err != nil {
		return Gregorian{}, err
	}
	// Monday is 0, so Sunday is 6 days after it.
	back := (int(nov30.Weekday()) + 1) % 7
	if back > 3 {
		return nov30.Add(Days(7 - back))
	}
	return nov30.Sub(Days(back))
}

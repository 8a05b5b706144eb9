package calendar

import "time"

// Clock supplies the current time. Date constructors never read the system
// clock directly.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the local wall clock.
var SystemClock Clock = systemClock{}

// NowMode selects whether "now" keeps the time of day.
type NowMode int

const (
	WithTimeOfDay NowMode = iota
	DateOnly
)

// Now returns the Julian Day of the clock's current local date. The clock's
// location is used as-is; no time zone conversion happens.
func Now(c Clock, mode NowMode) (JD, error) {
	t := c.Now()
	year, month, day := t.Date()
	if mode == DateOnly {
		return GregorianToJD(year, int(month), day, 0, 0, 0)
	}
	second := float64(t.Second()) + float64(t.Nanosecond())/1e9
	return GregorianToJD(year, int(month), day, t.Hour(), t.Minute(), second)
}

package calendar

import "math"

const (
	secondsPerDay = 86400
	msPerDay      = secondsPerDay * 1000
)

// ToFraction converts a clock time to the fraction of a day elapsed since
// midnight. Inputs are not range-checked.
func ToFraction(hour, minute int, second float64) float64 {
	return (float64(hour)*3600 + float64(minute)*60 + second) / secondsPerDay
}

// FromFraction converts a day fraction back to a clock time. The second is
// rounded to the millisecond.
func FromFraction(f float64) (hour, minute int, second float64) {
	ms := int64(math.Round(f * msPerDay))
	hour = int(ms / 3600000)
	minute = int(ms % 3600000 / 60000)
	second = float64(ms%60000) / 1000
	return hour, minute, second
}

package calendar

import (
	"errors"
	"testing"
)

func TestIsJulianLeapYear(t *testing.T) {
	for year, want := range map[int]bool{1900: true, 2000: true, 1997: false, 0: true, -1: false, -4: true} {
		if got := IsJulianLeapYear(year); got != want {
			t.Errorf("IsJulianLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestJulianToJD(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             JD
	}{
		{"reform eve", 1582, 10, 5, 2299160.5},
		{"epoch", 1, 1, 1, JulianEpoch},
		{"JD zero", -4712, 1, 1, -0.5},
		{"orthodox christmas 2024", 2023, 12, 25, 2460316.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JulianToJD(tt.year, tt.month, tt.day, 0, 0, 0)
			if err != nil {
				t.Fatalf("JulianToJD() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("JulianToJD(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}

	// 1900 is a leap year in the Julian calendar only.
	if _, err := JulianToJD(1900, 2, 29, 0, 0, 0); err != nil {
		t.Errorf("Julian 1900-02-29 rejected: %v", err)
	}
	if _, err := GregorianToJD(1900, 2, 29, 0, 0, 0); !errors.Is(err, ErrInvalidField) {
		t.Errorf("Gregorian 1900-02-29 error = %v, want ErrInvalidField", err)
	}

	// Early in -4799 falls before the supported range.
	if _, err := JulianToJD(-4799, 1, 1, 0, 0, 0); !errors.Is(err, ErrInvalidField) {
		t.Errorf("Julian -4799-01-01 error = %v, want ErrInvalidField", err)
	}
}

func TestJDToJulian(t *testing.T) {
	tests := []struct {
		jd   JD
		want Fields
	}{
		{2299160.5, Fields{Year: 1582, Month: 10, Day: 5}},
		{2299159.5, Fields{Year: 1582, Month: 10, Day: 4}},
		{0, Fields{Year: -4712, Month: 1, Day: 1, Hour: 12}},
		{2451544.5, Fields{Year: 1999, Month: 12, Day: 19}},
		{MinJD, Fields{Year: -4799, Month: 2, Day: 8}},
	}

	for _, tt := range tests {
		got, err := JDToJulian(tt.jd)
		if err != nil {
			t.Errorf("JDToJulian(%v) error: %v", tt.jd, err)
			continue
		}
		if got != tt.want {
			t.Errorf("JDToJulian(%v) = %v, want %v", tt.jd, got, tt.want)
		}
	}
}

func TestJulian_Add(t *testing.T) {
	tests := []struct {
		name   string
		start  [3]int
		offset Offset
		want   [3]int
	}{
		{"century leap day", [3]int{1900, 2, 28}, Days(1), [3]int{1900, 2, 29}},
		{"year keeps century leap day", [3]int{1896, 2, 29}, Years(4), [3]int{1900, 2, 29}},
		{"year clamps leap day", [3]int{1900, 2, 29}, Years(1), [3]int{1901, 2, 28}},
		{"month clamps", [3]int{1900, 1, 31}, Months(1), [3]int{1900, 2, 29}},
		{"month carries", [3]int{1582, 12, 25}, Months(1), [3]int{1583, 1, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := must(NewJulian(tt.start[0], tt.start[1], tt.start[2]))
			got := must(start.Add(tt.offset))
			want := must(NewJulian(tt.want[0], tt.want[1], tt.want[2]))
			if !got.Equal(want) {
				t.Errorf("%v + %v = %v, want %v", start, tt.offset, got, want)
			}
		})
	}
}

func TestToJulian(t *testing.T) {
	g := must(NewGregorianTime(2024, 5, 5, 8, 0, 0))
	j := must(ToJulian(g))
	if j.Year() != 2024 || j.Month() != 4 || j.Day() != 22 || j.Hour() != 8 {
		t.Errorf("ToJulian(2024-05-05 08:00) = %v, want 2024-04-22 08:00", j)
	}
	if j.MonthName() != "April" {
		t.Errorf("MonthName() = %q, want April", j.MonthName())
	}
	if j.DaysSince(g) != 0 {
		t.Errorf("DaysSince = %v, want 0", j.DaysSince(g))
	}
}

package calendar

import "testing"

func TestGregorianEaster(t *testing.T) {
	tests := []struct {
		year       int
		month, day int
	}{
		{2000, 4, 23},
		{2019, 4, 21},
		{2024, 3, 31},
		{2025, 4, 20},
		{2026, 4, 5},
		{2038, 4, 25},
		{1818, 3, 22},
	}

	for _, tt := range tests {
		got, err := GregorianEaster(tt.year)
		if err != nil {
			t.Errorf("GregorianEaster(%d) error: %v", tt.year, err)
			continue
		}
		if got.Month() != tt.month || got.Day() != tt.day {
			t.Errorf("GregorianEaster(%d) = %v, want %d-%02d-%02d", tt.year, got, tt.year, tt.month, tt.day)
		}
		if got.Weekday() != Sunday {
			t.Errorf("GregorianEaster(%d) falls on %v", tt.year, got.Weekday())
		}
	}

	if _, err := GregorianEaster(0); err == nil {
		t.Error("GregorianEaster(0) should fail")
	}
}

func TestJulianEaster(t *testing.T) {
	tests := []struct {
		year         int
		gMonth, gDay int
	}{
		{2024, 5, 5},
		{2025, 4, 20},
		{2023, 4, 16},
	}

	for _, tt := range tests {
		got, err := JulianEaster(tt.year)
		if err != nil {
			t.Errorf("JulianEaster(%d) error: %v", tt.year, err)
			continue
		}
		g := must(ToGregorian(got))
		if g.Year() != tt.year || g.Month() != tt.gMonth || g.Day() != tt.gDay {
			t.Errorf("JulianEaster(%d) = %v (Gregorian %v), want Gregorian %d-%02d-%02d", tt.year, got, g, tt.year, tt.gMonth, tt.gDay)
		}
		if got.Weekday() != Sunday {
			t.Errorf("JulianEaster(%d) falls on %v", tt.year, got.Weekday())
		}
	}
}

func TestAdventSunday(t *testing.T) {
	tests := []struct {
		year       int
		month, day int
	}{
		{2023, 12, 3},
		{2024, 12, 1},
		{2025, 11, 30},
		{2026, 11, 29},
		{2027, 11, 28},
		{2028, 12, 3},
	}

	for _, tt := range tests {
		got, err := AdventSunday(tt.year)
		if err != nil {
			t.Errorf("AdventSunday(%d) error: %v", tt.year, err)
			continue
		}
		if got.Month() != tt.month || got.Day() != tt.day {
			t.Errorf("AdventSunday(%d) = %v, want %d-%02d-%02d", tt.year, got, tt.year, tt.month, tt.day)
		}
	}
}

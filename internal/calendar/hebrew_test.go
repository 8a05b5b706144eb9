package calendar

import (
	"errors"
	"testing"
)

func TestIsHebrewLeapYear(t *testing.T) {
	// Years 3, 6, 8, 11, 14, 17 and 19 of each Metonic cycle.
	leap := map[int]bool{3: true, 6: true, 8: true, 11: true, 14: true, 17: true, 19: true}
	for year := 1; year <= 19; year++ {
		if got := IsHebrewLeapYear(year); got != leap[year] {
			t.Errorf("IsHebrewLeapYear(%d) = %v, want %v", year, got, leap[year])
		}
		if got := IsHebrewLeapYear(year + 19*303); got != leap[year] {
			t.Errorf("IsHebrewLeapYear(%d) = %v, want %v", year+19*303, got, leap[year])
		}
	}

	for _, year := range []int{5776, 5779, 5782, 5784, 5787, 5790, 5793} {
		if !IsHebrewLeapYear(year) {
			t.Errorf("IsHebrewLeapYear(%d) = false, want true", year)
		}
	}
}

func TestHebrewYearDays(t *testing.T) {
	tests := []struct {
		year            int
		days            int
		heshvan, kislev int
	}{
		{5783, 355, 30, 30},
		{5784, 383, 29, 29},
		{5785, 355, 30, 30},
		{5786, 354, 29, 30},
	}

	for _, tt := range tests {
		if got := HebrewYearDays(tt.year); got != tt.days {
			t.Errorf("HebrewYearDays(%d) = %d, want %d", tt.year, got, tt.days)
		}
		if got := HebrewCalendar.DaysInMonth(tt.year, Heshvan); got != tt.heshvan {
			t.Errorf("DaysInMonth(%d, Heshvan) = %d, want %d", tt.year, got, tt.heshvan)
		}
		if got := HebrewCalendar.DaysInMonth(tt.year, Kislev); got != tt.kislev {
			t.Errorf("DaysInMonth(%d, Kislev) = %d, want %d", tt.year, got, tt.kislev)
		}
	}
}

func TestHebrewYearLengthsAreValid(t *testing.T) {
	valid := map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}
	for year := 5600; year < 6000; year++ {
		days := HebrewYearDays(year)
		if !valid[days] {
			t.Fatalf("HebrewYearDays(%d) = %d", year, days)
		}
		if leap := days > 380; leap != IsHebrewLeapYear(year) {
			t.Fatalf("year %d has %d days but IsHebrewLeapYear = %v", year, days, IsHebrewLeapYear(year))
		}

		sum := 0
		for m := 1; m <= HebrewCalendar.MonthsInYear(year); m++ {
			sum += HebrewCalendar.DaysInMonth(year, m)
		}
		if sum != days {
			t.Fatalf("months of %d sum to %d, want %d", year, sum, days)
		}
	}
}

func TestHebrewToJD(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             JD
	}{
		{"Rosh Hashanah 5785", 5785, Tishri, 1, 2460586.5},
		{"Rosh Hashanah 5784", 5784, Tishri, 1, 2460203.5},
		{"Rosh Hashanah 5760", 5760, Tishri, 1, 2451432.5},
		{"Pesach 5784", 5784, Nisan, 15, 2460423.5},
		{"Purim 5784", 5784, Veadar, 14, 2460393.5},
		{"Purim 5785", 5785, Adar, 14, 2460748.5},
		{"Hanukkah 5785", 5785, Kislev, 25, 2460670.5},
		{"last day of 5784", 5784, Elul, 29, 2460585.5},
		{"AM 1", 1, Tishri, 1, 347997.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HebrewToJD(tt.year, tt.month, tt.day, 0, 0, 0)
			if err != nil {
				t.Fatalf("HebrewToJD() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("HebrewToJD(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
			back, err := JDToHebrew(got)
			if err != nil {
				t.Fatalf("JDToHebrew() error: %v", err)
			}
			if back.Year != tt.year || back.Month != tt.month || back.Day != tt.day {
				t.Errorf("JDToHebrew(%v) = %v", got, back)
			}
		})
	}
}

func TestHebrewToJD_Invalid(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		field            string
	}{
		{"year zero", 0, Tishri, 1, "year"},
		{"Veadar in common year", 5785, Veadar, 1, "month"},
		{"Elul 30", 5784, Elul, 30, "day"},
		{"short Kislev", 5784, Kislev, 30, "day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HebrewToJD(tt.year, tt.month, tt.day, 0, 0, 0)
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %v, want *FieldError", err)
			}
			if fe.Field != tt.field || fe.Calendar != "hebrew" {
				t.Errorf("FieldError = %+v, want hebrew %s", fe, tt.field)
			}
		})
	}
}

func TestHebrew_AddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start [3]int
		n     int
		want  [3]int
	}{
		{"Elul to Tishri starts a year", [3]int{5784, Elul, 15}, 1, [3]int{5785, Tishri, 15}},
		{"Adar to Veadar in a leap year", [3]int{5784, Adar, 10}, 1, [3]int{5784, Veadar, 10}},
		{"Veadar to Nisan", [3]int{5784, Veadar, 10}, 1, [3]int{5784, Nisan, 10}},
		{"Shevat to Adar clamps", [3]int{5785, Shevat, 30}, 1, [3]int{5785, Adar, 29}},
		{"Adar to Nisan in a common year", [3]int{5785, Adar, 1}, 1, [3]int{5785, Nisan, 1}},
		{"Tishri back to Elul", [3]int{5785, Tishri, 1}, -1, [3]int{5784, Elul, 1}},
		{"twelve months across a leap year", [3]int{5784, Nisan, 1}, 12, [3]int{5785, Nisan, 1}},
		{"one Metonic cycle forward", [3]int{5760, Tishri, 1}, 235, [3]int{5779, Tishri, 1}},
		{"one Metonic cycle back", [3]int{5760, Tishri, 1}, -235, [3]int{5741, Tishri, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := must(NewHebrew(tt.start[0], tt.start[1], tt.start[2]))
			got, err := start.Add(Months(tt.n))
			if err != nil {
				t.Fatalf("Add(%d months) error: %v", tt.n, err)
			}
			want := Fields{Year: tt.want[0], Month: tt.want[1], Day: tt.want[2]}
			if got.Fields() != want {
				t.Errorf("%v + %d months = %v, want %v", start, tt.n, got, want)
			}
		})
	}
}

func TestHebrew_AddYears(t *testing.T) {
	tests := []struct {
		name  string
		start [3]int
		want  [3]int
	}{
		{"Veadar becomes Adar", [3]int{5784, Veadar, 29}, [3]int{5785, Adar, 29}},
		{"Adar I clamps", [3]int{5784, Adar, 30}, [3]int{5785, Adar, 29}},
		{"long Heshvan clamps", [3]int{5785, Heshvan, 30}, [3]int{5786, Heshvan, 29}},
		{"Tishri unchanged", [3]int{5785, Tishri, 10}, [3]int{5786, Tishri, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := must(NewHebrew(tt.start[0], tt.start[1], tt.start[2]))
			got := must(start.Add(Years(1)))
			want := Fields{Year: tt.want[0], Month: tt.want[1], Day: tt.want[2]}
			if got.Fields() != want {
				t.Errorf("%v + 1 year = %v, want %v", start, got, want)
			}
		})
	}
}

func TestHebrew_AddDays(t *testing.T) {
	start := must(NewHebrewTime(5784, Elul, 29, 18, 0, 0))
	got := must(start.Add(Days(1)))
	want := Fields{Year: 5785, Month: Tishri, Day: 1, Hour: 18}
	if got.Fields() != want {
		t.Errorf("last day of 5784 + 1 day = %v, want %v", got, want)
	}

	if _, err := must(NewHebrew(1, Tishri, 1)).Sub(Days(1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("before AM 1 error = %v, want ErrOutOfRange", err)
	}
	if _, err := must(NewHebrew(1, Tishri, 1)).Sub(Years(1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("year before AM 1 error = %v, want ErrOutOfRange", err)
	}
}

func TestHebrew_Compare(t *testing.T) {
	nisan := must(NewHebrew(5784, Nisan, 15))
	tishri := must(NewHebrew(5784, Tishri, 1))

	// Field order puts Nisan first even though Tishri 5784 came earlier.
	if !nisan.Before(tishri) {
		t.Error("Nisan should sort before Tishri of the same year")
	}
	if Compare(nisan, tishri) != 1 {
		t.Error("Nisan 5784 should be chronologically after Tishri 5784")
	}
	if nisan.MonthName() != "Nisan" {
		t.Errorf("MonthName() = %q, want Nisan", nisan.MonthName())
	}
}

func TestToHebrew(t *testing.T) {
	g := must(NewGregorian(2024, 10, 3))
	h := must(ToHebrew(g))
	if h.Year() != 5785 || h.Month() != Tishri || h.Day() != 1 {
		t.Errorf("ToHebrew(2024-10-03) = %v, want 5785-07-01", h)
	}
	if h.Weekday() != Thursday {
		t.Errorf("Weekday() = %v, want Thursday", h.Weekday())
	}
}

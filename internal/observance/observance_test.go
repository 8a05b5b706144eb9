package observance

import (
	"context"
	"errors"
	"testing"

	"github.com/zapponejosh/khronos/internal/calendar"
	"github.com/zapponejosh/khronos/internal/database"
)

type ymd struct{ y, m, d int }

func dates(occ []Occurrence) []ymd {
	out := make([]ymd, len(occ))
	for i, o := range occ {
		out[i] = ymd{o.Date.Year(), o.Date.Month(), o.Date.Day()}
	}
	return out
}

func equalDates(a, b []ymd) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		o    database.Observance
		year int
		want []ymd
	}{
		{
			name: "rosh hashanah",
			o:    database.Observance{Name: "Rosh Hashanah", Calendar: "hebrew", Kind: database.KindFixed, Month: calendar.Tishri, Day: 1},
			year: 2024,
			want: []ymd{{2024, 10, 3}},
		},
		{
			name: "purim in veadar",
			o:    database.Observance{Name: "Purim", Calendar: "hebrew", Kind: database.KindFixed, Month: calendar.Veadar, Day: 14},
			year: 2024,
			want: []ymd{{2024, 3, 24}},
		},
		{
			name: "veadar skipped in common years",
			o:    database.Observance{Name: "Purim", Calendar: "hebrew", Kind: database.KindFixed, Month: calendar.Veadar, Day: 14},
			year: 2025,
			want: []ymd{},
		},
		{
			name: "ramadan",
			o:    database.Observance{Name: "Ramadan", Calendar: "islamic", Kind: database.KindFixed, Month: calendar.Ramadan, Day: 1},
			year: 2024,
			want: []ymd{{2024, 3, 11}},
		},
		{
			name: "islamic new year twice",
			o:    database.Observance{Name: "Hijri New Year", Calendar: "islamic", Kind: database.KindFixed, Month: calendar.Muharram, Day: 1},
			year: 2008,
			want: []ymd{{2008, 1, 10}, {2008, 12, 29}},
		},
		{
			name: "vulcan new year twice",
			o:    database.Observance{Name: "Vulcan New Year", Calendar: "vulcan", Kind: database.KindFixed, Month: 1, Day: 1},
			year: 2026,
			want: []ymd{{2026, 1, 15}, {2026, 9, 24}},
		},
		{
			name: "orthodox christmas from the previous julian year",
			o:    database.Observance{Name: "Orthodox Christmas", Calendar: "julian", Kind: database.KindFixed, Month: 12, Day: 25},
			year: 2024,
			want: []ymd{{2024, 1, 7}},
		},
		{
			name: "leap day clamped",
			o:    database.Observance{Name: "Leap Day", Calendar: "gregorian", Kind: database.KindFixed, Month: 2, Day: 29},
			year: 2023,
			want: []ymd{{2023, 2, 28}},
		},
		{
			name: "offset crosses the year boundary",
			o:    database.Observance{Name: "New Year's Day", Calendar: "gregorian", Kind: database.KindFixed, Month: 12, Day: 31, OffsetDays: 1},
			year: 2024,
			want: []ymd{{2024, 1, 1}},
		},
		{
			name: "pentecost",
			o:    database.Observance{Name: "Pentecost", Calendar: "gregorian", Kind: database.KindEaster, OffsetDays: 49},
			year: 2024,
			want: []ymd{{2024, 5, 19}},
		},
		{
			name: "ash wednesday",
			o:    database.Observance{Name: "Ash Wednesday", Calendar: "gregorian", Kind: database.KindEaster, OffsetDays: -46},
			year: 2024,
			want: []ymd{{2024, 2, 14}},
		},
		{
			name: "orthodox easter",
			o:    database.Observance{Name: "Pascha", Calendar: "julian", Kind: database.KindEaster},
			year: 2024,
			want: []ymd{{2024, 5, 5}},
		},
		{
			name: "first sunday of advent",
			o:    database.Observance{Name: "Advent", Calendar: "gregorian", Kind: database.KindAdvent},
			year: 2024,
			want: []ymd{{2024, 12, 1}},
		},
		{
			name: "advent anchor from the previous year",
			o:    database.Observance{Name: "Advent + 40", Calendar: "gregorian", Kind: database.KindAdvent, OffsetDays: 40},
			year: 2025,
			want: []ymd{{2025, 1, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.o, tt.year)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !equalDates(dates(got), tt.want) {
				t.Errorf("Resolve() = %v, want %v", dates(got), tt.want)
			}
			for _, occ := range got {
				if occ.Native.Calendar().Name() != tt.o.Calendar {
					t.Errorf("Native calendar = %s, want %s", occ.Native.Calendar().Name(), tt.o.Calendar)
				}
				if occ.Native.JD() != occ.Date.JD() {
					t.Errorf("Native JD %v != Date JD %v", occ.Native.JD(), occ.Date.JD())
				}
			}
		})
	}
}

func TestResolve_NativeFields(t *testing.T) {
	o := database.Observance{Name: "Leap Day", Calendar: "julian", Kind: database.KindFixed, Month: 2, Day: 29}

	// Julian 2023 is common, so February 29 clamps to the 28th.
	got, err := Resolve(o, 2023)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Resolve() returned %d occurrences, want 1", len(got))
	}
	if f := got[0].Native.Fields(); f.Month != 2 || f.Day != 28 {
		t.Errorf("Native = %v, want Julian 2023-02-28", f)
	}
	if d := got[0].Date; d.Month() != 3 || d.Day() != 13 {
		t.Errorf("Date = %v, want 2023-03-13", d)
	}
}

func TestResolve_YearRange(t *testing.T) {
	o := database.Observance{Name: "Epiphany", Calendar: "gregorian", Kind: database.KindFixed, Month: 1, Day: 6}
	for _, year := range []int{0, -44, 10000} {
		if _, err := Resolve(o, year); !errors.Is(err, ErrYearRange) {
			t.Errorf("Resolve(%d) error = %v, want ErrYearRange", year, err)
		}
	}
	if got, err := Resolve(o, 1); err != nil || len(got) != 1 {
		t.Errorf("Resolve(1) = %v, %v, want one occurrence", dates(got), err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		o       database.Observance
		wantErr bool
	}{
		{"fixed ok", database.Observance{Name: "x", Calendar: "hebrew", Kind: database.KindFixed, Month: 13, Day: 29}, false},
		{"easter julian ok", database.Observance{Name: "x", Calendar: "julian", Kind: database.KindEaster, OffsetDays: -48}, false},
		{"missing name", database.Observance{Calendar: "gregorian", Kind: database.KindFixed, Month: 1, Day: 1}, true},
		{"unknown calendar", database.Observance{Name: "x", Calendar: "mayan", Kind: database.KindFixed, Month: 1, Day: 1}, true},
		{"unknown kind", database.Observance{Name: "x", Calendar: "gregorian", Kind: "lunar"}, true},
		{"month past end", database.Observance{Name: "x", Calendar: "islamic", Kind: database.KindFixed, Month: 13, Day: 1}, true},
		{"day past longest month", database.Observance{Name: "x", Calendar: "gregorian", Kind: database.KindFixed, Month: 2, Day: 30}, true},
		{"vulcan day 22", database.Observance{Name: "x", Calendar: "vulcan", Kind: database.KindFixed, Month: 1, Day: 22}, true},
		{"easter in hebrew", database.Observance{Name: "x", Calendar: "hebrew", Kind: database.KindEaster}, true},
		{"advent in julian", database.Observance{Name: "x", Calendar: "julian", Kind: database.KindAdvent}, true},
		{"offset too large", database.Observance{Name: "x", Calendar: "gregorian", Kind: database.KindEaster, OffsetDays: 400}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.o)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

type fakeStore struct {
	observances []database.Observance
	err         error
}

func (f fakeStore) ListObservances(context.Context) ([]database.Observance, error) {
	return f.observances, f.err
}

func TestResolver_Year(t *testing.T) {
	store := fakeStore{observances: []database.Observance{
		{Name: "Rosh Hashanah", Calendar: "hebrew", Kind: database.KindFixed, Month: calendar.Tishri, Day: 1},
		{Name: "Pentecost", Calendar: "gregorian", Kind: database.KindEaster, OffsetDays: 49},
		{Name: "Broken", Calendar: "mayan", Kind: database.KindFixed, Month: 1, Day: 1},
		{Name: "Orthodox Christmas", Calendar: "julian", Kind: database.KindFixed, Month: 12, Day: 25},
		{Name: "Whit Sunday", Calendar: "gregorian", Kind: database.KindEaster, OffsetDays: 49},
	}}

	got, err := NewResolver(store).Year(context.Background(), 2024)
	if err != nil {
		t.Fatalf("Year() error = %v", err)
	}

	wantNames := []string{"Orthodox Christmas", "Pentecost", "Whit Sunday", "Rosh Hashanah"}
	if len(got) != len(wantNames) {
		t.Fatalf("Year() returned %d occurrences, want %d", len(got), len(wantNames))
	}
	for i, name := range wantNames {
		if got[i].Observance.Name != name {
			t.Errorf("Year()[%d] = %q, want %q", i, got[i].Observance.Name, name)
		}
	}
}

func TestResolver_Year_Errors(t *testing.T) {
	boom := errors.New("boom")
	r := NewResolver(fakeStore{err: boom})

	if _, err := r.Year(context.Background(), 2024); !errors.Is(err, boom) {
		t.Errorf("Year() error = %v, want boom", err)
	}
	if _, err := r.Year(context.Background(), 0); !errors.Is(err, ErrYearRange) {
		t.Errorf("Year(0) error = %v, want ErrYearRange", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r = NewResolver(fakeStore{observances: []database.Observance{
		{Name: "Epiphany", Calendar: "gregorian", Kind: database.KindFixed, Month: 1, Day: 6},
	}})
	if _, err := r.Year(ctx, 2024); !errors.Is(err, context.Canceled) {
		t.Errorf("Year(canceled) error = %v, want context.Canceled", err)
	}
}

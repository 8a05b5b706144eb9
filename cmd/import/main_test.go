package main

import (
	"os"
	"strings"
	"testing"

	"github.com/zapponejosh/khronos/internal/database"
	"github.com/zapponejosh/khronos/internal/observance"
)

func TestParseSeed(t *testing.T) {
	in := `
observances:
  - name: Rosh Hashanah
    calendar: Hebrew
    kind: fixed
    month: 7
    day: 1
    description: "  Jewish New Year "
  - name: Pentecost
    calendar: gregorian
    kind: easter
    offset_days: 49
`
	got, err := parseSeed(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parseSeed() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("parseSeed() returned %d entries, want 2", len(got))
	}

	rh := got[0]
	if rh.Calendar != "hebrew" || rh.Kind != database.KindFixed || rh.Month != 7 || rh.Day != 1 {
		t.Errorf("entry 0 = %+v", rh)
	}
	if rh.Description == nil || *rh.Description != "Jewish New Year" {
		t.Errorf("entry 0 description = %v, want trimmed", rh.Description)
	}
	if got[1].OffsetDays != 49 || got[1].Description != nil {
		t.Errorf("entry 1 = %+v", got[1])
	}
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "unknown field",
			in:   "observances:\n  - name: x\n    colour: red\n",
			want: "parse YAML",
		},
		{
			name: "bad entries are all reported",
			in: `
observances:
  - name: Bad month
    calendar: islamic
    kind: fixed
    month: 13
    day: 1
  - name: Hebrew Easter
    calendar: hebrew
    kind: easter
`,
			want: "entry 2",
		},
		{
			name: "duplicate name",
			in: `
observances:
  - {name: Epiphany, calendar: gregorian, kind: fixed, month: 1, day: 6}
  - {name: Epiphany, calendar: julian, kind: fixed, month: 1, day: 6}
`,
			want: `duplicate name "Epiphany"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSeed(strings.NewReader(tt.in))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("parseSeed() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseSeed_Empty(t *testing.T) {
	got, err := parseSeed(strings.NewReader(""))
	if err != nil || len(got) != 0 {
		t.Errorf("parseSeed(empty) = %v, %v, want nothing", got, err)
	}
}

func TestSeedCatalog(t *testing.T) {
	f, err := os.Open("../../data/observances.yaml")
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer f.Close()

	obs, err := parseSeed(f)
	if err != nil {
		t.Fatalf("bundled catalog is invalid: %v", err)
	}
	for _, o := range obs {
		if _, err := observance.Resolve(o, 2025); err != nil {
			t.Errorf("Resolve(%q, 2025) error: %v", o.Name, err)
		}
	}
}

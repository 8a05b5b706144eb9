package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/zapponejosh/khronos/internal/calendar"
	"github.com/zapponejosh/khronos/internal/database"
	"github.com/zapponejosh/khronos/internal/format"
	"github.com/zapponejosh/khronos/internal/observance"
)

// This tool prints the key dates of a Gregorian year in every calendar,
// for eyeballing conversions against published tables.

var keyDates = []database.Observance{
	{Name: "Ash Wednesday", Calendar: "gregorian", Kind: database.KindEaster, OffsetDays: -46},
	{Name: "Easter", Calendar: "gregorian", Kind: database.KindEaster},
	{Name: "Orthodox Easter", Calendar: "julian", Kind: database.KindEaster},
	{Name: "Pentecost", Calendar: "gregorian", Kind: database.KindEaster, OffsetDays: 49},
	{Name: "Passover", Calendar: "hebrew", Kind: database.KindFixed, Month: 1, Day: 15},
	{Name: "Rosh Hashanah", Calendar: "hebrew", Kind: database.KindFixed, Month: calendar.Tishri, Day: 1},
	{Name: "Ramadan begins", Calendar: "islamic", Kind: database.KindFixed, Month: calendar.Ramadan, Day: 1},
	{Name: "Islamic New Year", Calendar: "islamic", Kind: database.KindFixed, Month: calendar.Muharram, Day: 1},
	{Name: "Vulcan New Year", Calendar: "vulcan", Kind: database.KindFixed, Month: 1, Day: 1},
	{Name: "Advent Sunday", Calendar: "gregorian", Kind: database.KindAdvent},
}

func main() {
	year := flag.Int("year", 2025, "Gregorian year to generate dates for")
	flag.Parse()

	if err := run(*year); err != nil {
		fmt.Fprintln(os.Stderr, "dategen:", err)
		os.Exit(1)
	}
}

func run(year int) error {
	fmt.Printf("=== Key Dates for %d ===\n\n", year)

	var occ []observance.Occurrence
	for _, o := range keyDates {
		got, err := observance.Resolve(o, year)
		if err != nil {
			return fmt.Errorf("%s: %w", o.Name, err)
		}
		occ = append(occ, got...)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "OBSERVANCE\tJD")
	for _, cal := range calendar.All() {
		fmt.Fprintf(w, "\t%s", cal.Name())
	}
	fmt.Fprintln(w)

	for _, o := range occ {
		fmt.Fprintf(w, "%s\t%s", o.Observance.Name, o.Date.JD())
		for _, cal := range calendar.All() {
			d, err := calendar.Convert(o.Date, cal)
			if err != nil {
				fmt.Fprint(w, "\t-")
				continue
			}
			fmt.Fprintf(w, "\t%s", format.Day(d))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

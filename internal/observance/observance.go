// Package observance resolves catalog observances to the Gregorian dates
// they fall on in a given year.
package observance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zapponejosh/khronos/internal/calendar"
	"github.com/zapponejosh/khronos/internal/database"
)

// Years outside this range are rejected by Resolve.
const (
	MinYear = 1
	MaxYear = 9999
)

// MaxOffsetDays bounds offset_days in either direction.
const MaxOffsetDays = 366

// ErrInvalid is returned for an observance definition that can never resolve.
var ErrInvalid = errors.New("invalid observance")

// ErrYearRange is returned for a Gregorian year outside [MinYear, MaxYear].
var ErrYearRange = errors.New("year out of range")

// Occurrence is one observance falling on one Gregorian day.
type Occurrence struct {
	Observance database.Observance
	Date       calendar.Gregorian // the day it falls on
	Native     calendar.Date      // the same day in the observance's calendar
}

// Store is implemented by *database.DB and *database.Tx.
type Store interface {
	ListObservances(ctx context.Context) ([]database.Observance, error)
}

// Resolver resolves every observance in a store.
type Resolver struct {
	store Store
}

// NewResolver creates a resolver reading from store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Year returns every occurrence of every stored observance in the given
// Gregorian year, sorted by date. Observances that fail validation are
// skipped.
func (r *Resolver) Year(ctx context.Context, year int) ([]Occurrence, error) {
	if err := checkYear(year); err != nil {
		return nil, err
	}

	observances, err := r.store.ListObservances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list observances: %w", err)
	}

	out := []Occurrence{}
	for _, o := range observances {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		occ, err := Resolve(o, year)
		if errors.Is(err, ErrInvalid) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", o.Name, err)
		}
		out = append(out, occ...)
	}

	sortOccurrences(out)
	return out, nil
}

// Resolve finds the days o falls on in the given Gregorian year, sorted by
// date. A fixed observance in a calendar with shorter years may occur more
// than once; one whose month is missing in a given year (Veadar) is skipped
// that year.
func Resolve(o database.Observance, year int) ([]Occurrence, error) {
	if err := checkYear(year); err != nil {
		return nil, err
	}
	if err := Validate(o); err != nil {
		return nil, err
	}
	cal, err := calendar.Lookup(o.Calendar)
	if err != nil {
		return nil, err
	}

	start, err := calendar.GregorianToJD(year, 1, 1, 0, 0, 0)
	if err != nil {
		return nil, err
	}
	end, err := calendar.GregorianToJD(year+1, 1, 1, 0, 0, 0)
	if err != nil {
		return nil, err
	}

	var anchors []calendar.Date
	switch o.Kind {
	case database.KindFixed:
		anchors, err = fixedAnchors(cal, o, start, end)
	case database.KindEaster, database.KindAdvent:
		anchors, err = movableAnchors(o, year)
	}
	if err != nil {
		return nil, err
	}

	out := []Occurrence{}
	for _, anchor := range anchors {
		native, err := calendar.Add(anchor, calendar.Days(o.OffsetDays))
		if err != nil {
			return nil, err
		}
		if native.JD() < start || native.JD() >= end {
			continue
		}
		g, err := calendar.ToGregorian(native)
		if err != nil {
			return nil, err
		}
		out = append(out, Occurrence{Observance: o, Date: g, Native: native})
	}

	sortOccurrences(out)
	return out, nil
}

// fixedAnchors returns month/day in every year of cal that can land in
// [start, end) once the offset is applied.
func fixedAnchors(cal calendar.Calendar, o database.Observance, start, end calendar.JD) ([]calendar.Date, error) {
	from, err := cal.FromJD(start - calendar.JD(o.OffsetDays))
	if err != nil {
		return nil, err
	}
	to, err := cal.FromJD(end - 1 - calendar.JD(o.OffsetDays))
	if err != nil {
		return nil, err
	}

	var anchors []calendar.Date
	for y := from.Year; y <= to.Year; y++ {
		if o.Month > cal.MonthsInYear(y) {
			continue
		}
		day := min(o.Day, cal.DaysInMonth(y, o.Month))
		d, err := calendar.New(cal, calendar.Fields{Year: y, Month: o.Month, Day: day})
		if calendar.IsInvalidField(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, d)
	}
	return anchors, nil
}

// movableAnchors returns the Easter or Advent Sundays of the neighboring
// years so that large offsets can still reach this year.
func movableAnchors(o database.Observance, year int) ([]calendar.Date, error) {
	var anchors []calendar.Date
	for y := year - 1; y <= year+1; y++ {
		if y < MinYear {
			continue
		}
		var d calendar.Date
		var err error
		switch {
		case o.Kind == database.KindAdvent:
			d, err = calendar.AdventSunday(y)
		case o.Calendar == "julian":
			d, err = calendar.JulianEaster(y)
		default:
			d, err = calendar.GregorianEaster(y)
		}
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, d)
	}
	return anchors, nil
}

// Validate checks that o names a known calendar and kind and that its
// month, day and offset can resolve.
func Validate(o database.Observance) error {
	var problems []string

	if strings.TrimSpace(o.Name) == "" {
		problems = append(problems, "name is required")
	}
	cal, err := calendar.Lookup(o.Calendar)
	if err != nil {
		problems = append(problems, fmt.Sprintf("unknown calendar %q", o.Calendar))
	}
	if o.OffsetDays < -MaxOffsetDays || o.OffsetDays > MaxOffsetDays {
		problems = append(problems, fmt.Sprintf("offset_days %d outside [%d, %d]", o.OffsetDays, -MaxOffsetDays, MaxOffsetDays))
	}

	switch o.Kind {
	case database.KindFixed:
		if cal != nil {
			problems = append(problems, checkMonthDay(cal, o.Month, o.Day)...)
		}
	case database.KindEaster:
		if o.Calendar != "gregorian" && o.Calendar != "julian" {
			problems = append(problems, "easter observances must use the gregorian or julian calendar")
		}
	case database.KindAdvent:
		if o.Calendar != "gregorian" {
			problems = append(problems, "advent observances must use the gregorian calendar")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown kind %q", o.Kind))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// checkMonthDay accepts a month/day that exists in at least one year.
func checkMonthDay(cal calendar.Calendar, month, day int) []string {
	if _, err := cal.MonthName(month); err != nil {
		return []string{fmt.Sprintf("month %d does not exist in the %s calendar", month, cal.Name())}
	}
	// 30 years covers the leap cycles of every supported calendar.
	longest := 0
	for y := 5760; y < 5790; y++ {
		longest = max(longest, cal.DaysInMonth(y, month))
	}
	if day < 1 || day > longest {
		return []string{fmt.Sprintf("day %d outside [1, %d]", day, longest)}
	}
	return nil
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d outside [%d, %d]", ErrYearRange, year, MinYear, MaxYear)
	}
	return nil
}

func sortOccurrences(occ []Occurrence) {
	sort.SliceStable(occ, func(i, j int) bool {
		if occ[i].Date.JD() != occ[j].Date.JD() {
			return occ[i].Date.JD() < occ[j].Date.JD()
		}
		return occ[i].Observance.Name < occ[j].Observance.Name
	})
}

// Package ics exports resolved observances as an iCalendar feed.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/zapponejosh/khronos/internal/format"
	"github.com/zapponejosh/khronos/internal/observance"
)

// ProductID identifies the generator in the PRODID property.
const ProductID = "-//khronos//observances//EN"

// PropertyNativeDate carries the date in the observance's own calendar.
const PropertyNativeDate ical.ComponentProperty = "X-KHRONOS-NATIVE-DATE"

// Build returns a calendar with one all-day VEVENT per occurrence.
// stamp fills DTSTAMP so output is reproducible.
func Build(name string, occ []observance.Occurrence, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName(name)

	for _, o := range occ {
		g := o.Date
		start := time.Date(g.Year(), time.Month(g.Month()), g.Day(), 0, 0, 0, 0, time.UTC)

		event := cal.AddEvent(UID(o))
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary(o.Observance.Name)
		event.SetProperty(ical.ComponentPropertyCategories, o.Observance.Calendar)
		native, _, _ := strings.Cut(format.ISO(o.Native), "T")
		event.SetProperty(PropertyNativeDate, native)

		desc := format.Day(o.Native)
		if o.Observance.Description != nil && *o.Observance.Description != "" {
			desc += "\n" + *o.Observance.Description
		}
		event.SetDescription(desc)
	}

	return cal
}

// Write serializes the feed for a year to w.
func Write(w io.Writer, year int, occ []observance.Occurrence, stamp time.Time) error {
	cal := Build(fmt.Sprintf("Observances %d", year), occ, stamp)
	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}

// UID builds a stable event ID from the observance name and Gregorian date,
// so re-importing a feed updates events instead of duplicating them.
func UID(o observance.Occurrence) string {
	return fmt.Sprintf("%s-%04d%02d%02d@khronos", slug(o.Observance.Name), o.Date.Year(), o.Date.Month(), o.Date.Day())
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

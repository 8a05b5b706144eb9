package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/khronos/internal/calendar"
	"github.com/zapponejosh/khronos/internal/config"
	"github.com/zapponejosh/khronos/internal/database"
	"github.com/zapponejosh/khronos/internal/format"
	"github.com/zapponejosh/khronos/internal/ics"
	"github.com/zapponejosh/khronos/internal/logger"
	"github.com/zapponejosh/khronos/internal/observance"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	resolver *observance.Resolver
	clock    calendar.Clock
	cfg      *config.Config
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance reading the system clock.
func NewHandlers(db *database.DB, cfg *config.Config, log *slog.Logger) *Handlers {
	return &Handlers{
		db:       db,
		resolver: observance.NewResolver(db),
		clock:    calendar.SystemClock,
		cfg:      cfg,
		logger:   log,
	}
}

// WithClock replaces the clock used by /today and the ICS DTSTAMP.
func (h *Handlers) WithClock(c calendar.Clock) *Handlers {
	h.clock = c
	return h
}

// DateView is the JSON rendering of a date in one calendar.
type DateView struct {
	Calendar  string          `json:"calendar"`
	Fields    calendar.Fields `json:"fields"`
	ISO       string          `json:"iso"`
	JD        float64         `json:"jd"`
	Weekday   string          `json:"weekday"`
	MonthName string          `json:"month_name"`
	Formatted string          `json:"formatted"`
}

func viewOf(d calendar.Date) DateView {
	f := d.Fields()
	month, _ := d.Calendar().MonthName(f.Month)
	return DateView{
		Calendar:  d.Calendar().Name(),
		Fields:    f,
		ISO:       format.ISO(d),
		JD:        float64(d.JD()),
		Weekday:   calendar.WeekdayOf(d).String(),
		MonthName: month,
		Formatted: format.Date(d),
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		logger.Warn(ctx, "health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeHealthCheckFailed)
		return
	}

	stats, err := h.db.GetObservanceStats(ctx)
	if err != nil {
		logger.Error(ctx, "failed to count observances", err)
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeHealthCheckFailed)
		return
	}

	WriteSuccess(w, map[string]any{
		"status":      "healthy",
		"observances": stats,
	})
}

// CalendarInfo describes one calendar for the current year.
type CalendarInfo struct {
	Name         string   `json:"name"`
	CurrentYear  int      `json:"current_year"`
	IsLeapYear   bool     `json:"is_leap_year"`
	MonthsInYear int      `json:"months_in_year"`
	Months       []string `json:"months"`
}

// ListCalendars handles GET /api/v1/calendars
func (h *Handlers) ListCalendars(w http.ResponseWriter, r *http.Request) {
	jd, err := calendar.Now(h.clock, calendar.DateOnly)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	infos := make([]CalendarInfo, 0, len(calendar.All()))
	for _, cal := range calendar.All() {
		f, err := cal.FromJD(jd)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		info := CalendarInfo{
			Name:         cal.Name(),
			CurrentYear:  f.Year,
			IsLeapYear:   cal.IsLeapYear(f.Year),
			MonthsInYear: cal.MonthsInYear(f.Year),
		}
		for m := 1; m <= info.MonthsInYear; m++ {
			name, _ := cal.MonthName(m)
			info.Months = append(info.Months, name)
		}
		infos = append(infos, info)
	}

	WriteSuccess(w, infos)
}

// GetToday handles GET /api/v1/today?calendar=hebrew&date_only=true
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	cal, err := h.calendarParam(r, "calendar")
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	mode := calendar.WithTimeOfDay
	if dateOnly, _ := strconv.ParseBool(r.URL.Query().Get("date_only")); dateOnly {
		mode = calendar.DateOnly
	}

	jd, err := calendar.Now(h.clock, mode)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	d, err := calendar.FromJD(cal, jd)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, viewOf(d))
}

// Convert handles GET /api/v1/convert?from=gregorian&date=2024-10-03&to=hebrew
//
// Without "to", the date is rendered in every calendar.
func (h *Handlers) Convert(w http.ResponseWriter, r *http.Request) {
	src, err := h.dateParam(r, "date", "from")
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	targets := calendar.All()
	if r.URL.Query().Get("to") != "" {
		to, err := calendar.Lookup(r.URL.Query().Get("to"))
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		targets = []calendar.Calendar{to}
	}

	results, unsupported, err := convertAll(src.JD(), targets)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	if len(results) == 0 {
		WriteDomainError(w, fmt.Errorf("%w: %s", calendar.ErrOutOfRange, src.JD()))
		return
	}

	WriteSuccess(w, map[string]any{
		"source":      viewOf(src),
		"results":     results,
		"unsupported": unsupported,
	})
}

// GetJD handles GET /api/v1/jd/{jd}
func (h *Handlers) GetJD(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "jd")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		WriteBadRequest(w, fmt.Sprintf("Invalid Julian Day: %q", raw))
		return
	}
	jd := calendar.JD(v)

	results, unsupported, err := convertAll(jd, calendar.All())
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	if len(results) == 0 {
		WriteDomainError(w, fmt.Errorf("%w: %s", calendar.ErrOutOfRange, jd))
		return
	}

	WriteSuccess(w, map[string]any{
		"jd":          v,
		"weekday":     jd.Weekday().String(),
		"results":     results,
		"unsupported": unsupported,
	})
}

// convertAll renders jd in each calendar. Calendars whose floor lies after
// jd are listed in unsupported instead of failing the request.
func convertAll(jd calendar.JD, cals []calendar.Calendar) ([]DateView, []string, error) {
	results := []DateView{}
	unsupported := []string{}
	for _, cal := range cals {
		d, err := calendar.FromJD(cal, jd)
		if errors.Is(err, calendar.ErrOutOfRange) {
			unsupported = append(unsupported, cal.Name())
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		results = append(results, viewOf(d))
	}
	return results, unsupported, nil
}

// AddOffset handles GET /api/v1/add?calendar=gregorian&date=2024-01-31&unit=months&n=1
func (h *Handlers) AddOffset(w http.ResponseWriter, r *http.Request) {
	d, err := h.dateParam(r, "date", "calendar")
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	q := r.URL.Query()
	unit, err := calendar.ParseUnit(q.Get("unit"))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	n, err := strconv.ParseFloat(q.Get("n"), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		WriteBadRequest(w, fmt.Sprintf("Invalid amount n=%q", q.Get("n")))
		return
	}
	switch unit {
	case calendar.UnitDays, calendar.UnitWeeks, calendar.UnitMonths, calendar.UnitYears:
		if n != math.Trunc(n) {
			WriteBadRequest(w, fmt.Sprintf("%s takes a whole number, got %v", unit, n))
			return
		}
	}

	offset := calendar.Offset{Unit: unit, Value: n}
	got, err := calendar.Add(d, offset)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]any{
		"start":  viewOf(d),
		"offset": offset.String(),
		"result": viewOf(got),
	})
}

// Diff handles GET /api/v1/diff?a=2024-10-03&a_calendar=gregorian&b=5785-01-01&b_calendar=hebrew
//
// The result is the signed number of days from b to a.
func (h *Handlers) Diff(w http.ResponseWriter, r *http.Request) {
	a, err := h.dateParam(r, "a", "a_calendar")
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	b, err := h.dateParam(r, "b", "b_calendar")
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]any{
		"a":    viewOf(a),
		"b":    viewOf(b),
		"days": calendar.Diff(a, b),
	})
}

// OccurrenceView is one resolved observance.
type OccurrenceView struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Description *string  `json:"description,omitempty"`
	Date        string   `json:"date"`
	Weekday     string   `json:"weekday"`
	Native      DateView `json:"native"`
}

// GetObservances handles GET /api/v1/observances/{year}
func (h *Handlers) GetObservances(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	occ, err := h.resolver.Year(ctx, year)
	if err != nil {
		h.logError(r, "failed to resolve observances", err, slog.Int("year", year))
		WriteDomainError(w, err)
		return
	}

	views := make([]OccurrenceView, 0, len(occ))
	for _, o := range occ {
		day, _, _ := strings.Cut(format.ISO(o.Date), "T")
		views = append(views, OccurrenceView{
			ID:          o.Observance.ID,
			Name:        o.Observance.Name,
			Kind:        string(o.Observance.Kind),
			Description: o.Observance.Description,
			Date:        day,
			Weekday:     o.Date.Weekday().String(),
			Native:      viewOf(o.Native),
		})
	}

	WriteSuccess(w, map[string]any{
		"year":        year,
		"observances": views,
	})
}

// GetObservancesICS handles GET /api/v1/observances/{year}/ics
func (h *Handlers) GetObservancesICS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	occ, err := h.resolver.Year(ctx, year)
	if err != nil {
		h.logError(r, "failed to resolve observances", err, slog.Int("year", year))
		WriteDomainError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := ics.Write(&buf, year, occ, h.clock.Now()); err != nil {
		h.logError(r, "failed to write ics", err)
		WriteInternalError(w, "Failed to build calendar feed")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="observances-%d.ics"`, year))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// CreateObservanceRequest is the POST /api/v1/observances body.
type CreateObservanceRequest struct {
	Name        string `json:"name"`
	Calendar    string `json:"calendar"`
	Kind        string `json:"kind"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	OffsetDays  int    `json:"offset_days"`
	Description string `json:"description,omitempty"`
}

// CreateObservance handles POST /api/v1/observances
func (h *Handlers) CreateObservance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateObservanceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	o := &database.Observance{
		Name:       strings.TrimSpace(req.Name),
		Calendar:   strings.ToLower(strings.TrimSpace(req.Calendar)),
		Kind:       database.Kind(strings.ToLower(req.Kind)),
		Month:      req.Month,
		Day:        req.Day,
		OffsetDays: req.OffsetDays,
	}
	if req.Description != "" {
		o.Description = &req.Description
	}

	if err := observance.Validate(*o); err != nil {
		WriteDomainError(w, err)
		return
	}

	if err := h.db.CreateObservance(ctx, o); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			WriteError(w, http.StatusConflict, fmt.Sprintf("Observance %q already exists", o.Name), CodeDuplicate)
			return
		}
		h.logError(r, "failed to create observance", err)
		WriteInternalError(w, "Failed to create observance")
		return
	}

	logger.Info(ctx, "observance created",
		slog.Int64("id", o.ID),
		slog.String("name", o.Name),
		slog.String("calendar", o.Calendar),
	)
	WriteCreated(w, o)
}

// DeleteObservance handles DELETE /api/v1/observances/{id}
func (h *Handlers) DeleteObservance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteBadRequest(w, "Invalid observance ID")
		return
	}

	if err := h.db.DeleteObservance(ctx, id); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Observance not found")
			return
		}
		h.logError(r, "failed to delete observance", err)
		WriteInternalError(w, "Failed to delete observance")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Observance deleted"})
}

// calendarParam reads a calendar name from the query, falling back to the
// configured default.
func (h *Handlers) calendarParam(r *http.Request, key string) (calendar.Calendar, error) {
	name := r.URL.Query().Get(key)
	if name == "" {
		name = h.cfg.DefaultCalendar
	}
	return calendar.Lookup(name)
}

// dateParam parses the ISO date in dateKey in the calendar named by calKey.
func (h *Handlers) dateParam(r *http.Request, dateKey, calKey string) (calendar.Date, error) {
	cal, err := h.calendarParam(r, calKey)
	if err != nil {
		return nil, err
	}
	s := r.URL.Query().Get(dateKey)
	if s == "" {
		return nil, fmt.Errorf("%w: %s is required", calendar.ErrInvalidField, dateKey)
	}
	return format.Parse(cal, s)
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %q", raw))
		return 0, false
	}
	return year, true
}

func (h *Handlers) logError(r *http.Request, msg string, err error, args ...any) {
	logger.Error(r.Context(), msg, err, append(args, slog.String("path", r.URL.Path))...)
}

// decodeJSON decodes a JSON request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

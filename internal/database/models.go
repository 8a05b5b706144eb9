package database

import (
	"time"
)

// Kind says how an observance finds its date each year.
type Kind string

const (
	KindFixed  Kind = "fixed"  // month/day in the observance's own calendar
	KindEaster Kind = "easter" // offset from Easter Sunday
	KindAdvent Kind = "advent" // offset from the first Sunday of Advent
)

// ValidKinds returns all valid observance kinds.
func ValidKinds() []Kind {
	return []Kind{KindFixed, KindEaster, KindAdvent}
}

// IsValid checks if a kind is valid.
func (k Kind) IsValid() bool {
	for _, valid := range ValidKinds() {
		if k == valid {
			return true
		}
	}
	return false
}

// Observance is a named recurring date defined in one calendar.
type Observance struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Calendar    string    `json:"calendar"` // gregorian, julian, hebrew, islamic, vulcan
	Kind        Kind      `json:"kind"`
	Month       int       `json:"month,omitempty"` // fixed only
	Day         int       `json:"day,omitempty"`   // fixed only
	OffsetDays  int       `json:"offset_days"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ObservanceStats summarizes the catalog for the health endpoint.
type ObservanceStats struct {
	Total      int            `json:"total"`
	ByCalendar map[string]int `json:"by_calendar"`
}

package database

// migration is one schema step. Released migrations are never edited; a
// change to the catalog gets a new entry at the end.
type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{1, "observances", migrationV1Observances},
	{2, "observance_indexes", migrationV2ObservanceIndexes},
}

// schemaVersion is the version a fully migrated catalog reports.
func schemaVersion() int {
	return migrations[len(migrations)-1].version
}

// migrationV1Observances creates the observance catalog.
//
// An observance is a named date defined in one calendar:
//   - fixed: month/day in its own calendar (Hebrew 7/1, Islamic 9/1, ...)
//   - easter: offset_days from Easter Sunday (gregorian or julian computus)
//   - advent: offset_days from the first Sunday of Advent (gregorian)
//
// Calendar names are validated by the application, not the schema, so new
// calendars don't need a migration.
const migrationV1Observances = `
CREATE TABLE IF NOT EXISTS observances (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    name TEXT NOT NULL UNIQUE,
    calendar TEXT NOT NULL,

    kind TEXT NOT NULL CHECK (kind IN ('fixed', 'easter', 'advent')),

    -- fixed only; 0 for the movable kinds
    month INTEGER NOT NULL DEFAULT 0,
    day INTEGER NOT NULL DEFAULT 0,

    -- days added after the anchor date is found
    offset_days INTEGER NOT NULL DEFAULT 0,

    description TEXT,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

const migrationV2ObservanceIndexes = `
CREATE INDEX IF NOT EXISTS idx_observances_calendar
    ON observances(calendar);

CREATE INDEX IF NOT EXISTS idx_observances_kind
    ON observances(kind);
`

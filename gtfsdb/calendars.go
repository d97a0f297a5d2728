package gtfsdb

import (
	"database/sql"
	"fmt"
)

// calendarColumns is the set of day-flag columns a query may filter on.
// Query methods interpolate the column name into SQL, so it must come from
// this fixed set.
var calendarColumns = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// InsertCalendar adds a new calendar entry to the database
func InsertCalendar(db *sql.DB, calendar Calendar) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO calendar (
			service_id, monday, tuesday, wednesday, thursday,
			friday, saturday, sunday
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`,
		string(calendar.ServiceID), calendar.Monday, calendar.Tuesday, calendar.Wednesday,
		calendar.Thursday, calendar.Friday, calendar.Saturday, calendar.Sunday,
	)
	if err != nil {
		return fmt.Errorf("error inserting calendar: %w", err)
	}
	return nil
}

func createCalendarTable(tx *sql.Tx) error {
	return createTable(tx, "calendar", `
		CREATE TABLE IF NOT EXISTS calendar (
			service_id TEXT PRIMARY KEY,
			monday INTEGER NOT NULL DEFAULT 0,
			tuesday INTEGER NOT NULL DEFAULT 0,
			wednesday INTEGER NOT NULL DEFAULT 0,
			thursday INTEGER NOT NULL DEFAULT 0,
			friday INTEGER NOT NULL DEFAULT 0,
			saturday INTEGER NOT NULL DEFAULT 0,
			sunday INTEGER NOT NULL DEFAULT 0
		);`)
}

package gtfsdb

import (
	"database/sql"
	"fmt"
)

// createTables creates the five GTFS tables and their indexes. Safe to run
// against an existing database.
func createTables(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if err := createRoutesTable(tx); err != nil {
		tx.Rollback() // nolint:errcheck
		return err
	}
	if err := createStopsTable(tx); err != nil {
		tx.Rollback() // nolint:errcheck
		return err
	}
	if err := createCalendarTable(tx); err != nil {
		tx.Rollback() // nolint:errcheck
		return err
	}
	if err := createTripsTable(tx); err != nil {
		tx.Rollback() // nolint:errcheck
		return err
	}
	if err := createStopTimesTable(tx); err != nil {
		tx.Rollback() // nolint:errcheck
		return err
	}

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_trips_route_id ON trips(route_id);
		CREATE INDEX IF NOT EXISTS idx_trips_direction_id ON trips(direction_id);
		CREATE INDEX IF NOT EXISTS idx_trips_service_id ON trips(service_id);
		CREATE INDEX IF NOT EXISTS idx_stop_times_trip_id ON stop_times(trip_id);
		CREATE INDEX IF NOT EXISTS idx_stop_times_stop_id ON stop_times(stop_id);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// createTable creates a table in the database
func createTable(tx *sql.Tx, tableName string, createStmt string) error {
	if _, err := tx.Exec(createStmt); err != nil {
		return fmt.Errorf("error creating table %s: %w", tableName, err)
	}
	return nil
}

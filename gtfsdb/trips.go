package gtfsdb

import (
	"database/sql"
	"fmt"
)

// InsertTrip adds a new trip to the database
func InsertTrip(db *sql.DB, trip Trip) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO trips (
			trip_id, route_id, direction_id, service_id
		) VALUES (?, ?, ?, ?);
	`,
		string(trip.ID), string(trip.RouteID), trip.DirectionID, string(trip.ServiceID),
	)
	if err != nil {
		return fmt.Errorf("error inserting trip: %w", err)
	}
	return nil
}

func createTripsTable(tx *sql.Tx) error {
	return createTable(tx, "trips", `
		CREATE TABLE IF NOT EXISTS trips (
			trip_id TEXT PRIMARY KEY,
			route_id TEXT NOT NULL,
			direction_id INTEGER NOT NULL DEFAULT 0,
			service_id TEXT NOT NULL,
			FOREIGN KEY (route_id) REFERENCES routes(route_id)
		);`)
}

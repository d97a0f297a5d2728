package gtfsdb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// InsertStop adds a new stop to the database
func InsertStop(db *sql.DB, stop Stop) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO stops (
			stop_id, stop_name, stop_lat, stop_lon
		) VALUES (?, ?, ?, ?);
	`,
		string(stop.ID), stop.Name, stop.Lat, stop.Lon,
	)
	if err != nil {
		return fmt.Errorf("error inserting stop: %w", err)
	}
	return nil
}

// StopsForRoute returns the stops served by a route in one direction,
// ordered by the smallest stop_sequence each stop has across that
// direction's trips. Trips of the same route can visit stops in slightly
// different orders; the minimum gives one stable route-level ordering.
func (c *Client) StopsForRoute(ctx context.Context, routeID RouteID, direction int) ([]RouteStopRow, error) {
	rows, err := c.DB.QueryContext(ctx, `
		WITH route_trips AS (
			SELECT DISTINCT trip_id
			FROM trips
			WHERE CAST(route_id AS TEXT) = ?
			  AND CAST(direction_id AS TEXT) = ?
		),
		stop_sequences AS (
			SELECT
				CAST(st.stop_id AS TEXT) AS stop_id,
				MIN(st.stop_sequence) AS min_sequence
			FROM stop_times st
			WHERE st.trip_id IN (SELECT trip_id FROM route_trips)
			GROUP BY CAST(st.stop_id AS TEXT)
		)
		SELECT
			CAST(s.stop_id AS TEXT),
			CAST(s.stop_name AS TEXT),
			s.stop_lat,
			s.stop_lon,
			ss.min_sequence
		FROM stop_sequences ss
		JOIN stops s ON CAST(s.stop_id AS TEXT) = ss.stop_id
		ORDER BY ss.min_sequence;
	`, string(routeID), strconv.Itoa(direction))
	if err != nil {
		return nil, fmt.Errorf("error querying stops for route: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var stops []RouteStopRow
	for rows.Next() {
		var s RouteStopRow
		var id string
		if err := rows.Scan(&id, &s.StopName, &s.Lat, &s.Lon, &s.MinSequence); err != nil {
			return nil, fmt.Errorf("error scanning stop: %w", err)
		}
		s.StopID = StopID(id)
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading stops: %w", err)
	}
	return stops, nil
}

func createStopsTable(tx *sql.Tx) error {
	return createTable(tx, "stops", `
		CREATE TABLE IF NOT EXISTS stops (
			stop_id TEXT PRIMARY KEY,
			stop_name TEXT,
			stop_lat REAL,
			stop_lon REAL
		);`)
}

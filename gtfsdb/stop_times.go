package gtfsdb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// InsertStopTimes inserts multiple stop times using a transaction for better performance
func InsertStopTimes(db *sql.DB, stopTimes []StopTime) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stop_times (
			trip_id, stop_id, stop_sequence, arrival_time
		) VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, st := range stopTimes {
		_, err := stmt.Exec(string(st.TripID), string(st.StopID), st.StopSequence, st.ArrivalTime)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting stop_time: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// ArrivalTimes returns the distinct raw arrival times at every stop named
// stopName, across trips of the given route and direction whose service is
// active on the given calendar day column. Times come back in the feed's
// service-day encoding; normalization and transit-day ordering happen in
// the caller.
func (c *Client) ArrivalTimes(ctx context.Context, routeID RouteID, direction int, dayColumn, stopName string) ([]string, error) {
	if !calendarColumns[dayColumn] {
		return nil, fmt.Errorf("invalid calendar column: %q", dayColumn)
	}

	query := fmt.Sprintf(`
		WITH valid_services AS (
			SELECT CAST(service_id AS TEXT) AS service_id
			FROM calendar
			WHERE %s = 1
		),
		route_trips AS (
			SELECT DISTINCT t.trip_id
			FROM trips t
			WHERE CAST(t.route_id AS TEXT) = ?
			  AND CAST(t.direction_id AS TEXT) = ?
			  AND CAST(t.service_id AS TEXT) IN (SELECT service_id FROM valid_services)
		),
		named_stops AS (
			SELECT CAST(stop_id AS TEXT) AS stop_id
			FROM stops
			WHERE CAST(stop_name AS TEXT) = ?
		)
		SELECT DISTINCT CAST(st.arrival_time AS TEXT)
		FROM stop_times st
		WHERE st.trip_id IN (SELECT trip_id FROM route_trips)
		  AND CAST(st.stop_id AS TEXT) IN (SELECT stop_id FROM named_stops)
		ORDER BY st.arrival_time;
	`, dayColumn)

	rows, err := c.DB.QueryContext(ctx, query, string(routeID), strconv.Itoa(direction), stopName)
	if err != nil {
		return nil, fmt.Errorf("error querying arrival times: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("error scanning arrival time: %w", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading arrival times: %w", err)
	}
	return times, nil
}

// TripExtents returns, for each active trip of a route/direction with at
// least two stop_time rows, the earliest and latest raw arrival time.
// These are string extrema over all of the trip's stops, matching the
// aggregate the schedule data was built for, not the first and last stop
// by sequence.
func (c *Client) TripExtents(ctx context.Context, routeID RouteID, direction int, dayColumn string) ([]TripExtent, error) {
	if !calendarColumns[dayColumn] {
		return nil, fmt.Errorf("invalid calendar column: %q", dayColumn)
	}

	query := fmt.Sprintf(`
		WITH valid_services AS (
			SELECT CAST(service_id AS TEXT) AS service_id
			FROM calendar
			WHERE %s = 1
		),
		route_trips AS (
			SELECT trip_id
			FROM trips
			WHERE CAST(route_id AS TEXT) = ?
			  AND CAST(direction_id AS TEXT) = ?
			  AND CAST(service_id AS TEXT) IN (SELECT service_id FROM valid_services)
		)
		SELECT
			CAST(st.trip_id AS TEXT),
			CAST(MIN(st.arrival_time) AS TEXT) AS first_time,
			CAST(MAX(st.arrival_time) AS TEXT) AS last_time
		FROM stop_times st
		WHERE st.trip_id IN (SELECT trip_id FROM route_trips)
		GROUP BY st.trip_id
		HAVING COUNT(*) > 1;
	`, dayColumn)

	rows, err := c.DB.QueryContext(ctx, query, string(routeID), strconv.Itoa(direction))
	if err != nil {
		return nil, fmt.Errorf("error querying trip extents: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var extents []TripExtent
	for rows.Next() {
		var e TripExtent
		var id string
		if err := rows.Scan(&id, &e.FirstTime, &e.LastTime); err != nil {
			return nil, fmt.Errorf("error scanning trip extent: %w", err)
		}
		e.TripID = TripID(id)
		extents = append(extents, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading trip extents: %w", err)
	}
	return extents, nil
}

func createStopTimesTable(tx *sql.Tx) error {
	return createTable(tx, "stop_times", `
		CREATE TABLE IF NOT EXISTS stop_times (
			trip_id TEXT NOT NULL,
			stop_id TEXT NOT NULL,
			stop_sequence INTEGER NOT NULL,
			arrival_time TEXT,
			FOREIGN KEY (trip_id) REFERENCES trips(trip_id),
			FOREIGN KEY (stop_id) REFERENCES stops(stop_id),
			PRIMARY KEY (trip_id, stop_sequence)
		);`)
}

package gtfsdb

import (
	"context"
	"database/sql"
	"fmt"
)

// InsertRoute adds a new route to the database
func InsertRoute(db *sql.DB, route Route) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO routes (
			route_id, route_short_name, route_long_name
		) VALUES (?, ?, ?);
	`,
		string(route.ID), route.ShortName, route.LongName,
	)
	if err != nil {
		return fmt.Errorf("error inserting route: %w", err)
	}
	return nil
}

// ListRoutes returns every distinct route. Ordering is left to the caller;
// the display order (numeric short names first) is not expressible as a
// plain ORDER BY without a regex extension.
func (c *Client) ListRoutes(ctx context.Context) ([]Route, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT DISTINCT
			CAST(route_short_name AS TEXT),
			CAST(route_long_name AS TEXT),
			CAST(route_id AS TEXT)
		FROM routes;
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing routes: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var routes []Route
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.ShortName, &r.LongName, &r.ID); err != nil {
			return nil, fmt.Errorf("error scanning route: %w", err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading routes: %w", err)
	}
	return routes, nil
}

// RouteIDByShortName resolves a display short name to a route id with an
// exact match. Returns sql.ErrNoRows when no route carries that name.
func (c *Client) RouteIDByShortName(ctx context.Context, shortName string) (RouteID, error) {
	var id string
	err := c.DB.QueryRowContext(ctx, `
		SELECT CAST(route_id AS TEXT)
		FROM routes
		WHERE CAST(route_short_name AS TEXT) = ?
		LIMIT 1;
	`, shortName).Scan(&id)
	if err != nil {
		return "", err
	}
	return RouteID(id), nil
}

func createRoutesTable(tx *sql.Tx) error {
	return createTable(tx, "routes", `
		CREATE TABLE IF NOT EXISTS routes (
			route_id TEXT PRIMARY KEY,
			route_short_name TEXT,
			route_long_name TEXT
		);`)
}

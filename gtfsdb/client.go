// Package gtfsdb is a SQLite table store for the five GTFS schedule
// relations: routes, stops, trips, stop_times and calendar. The API server
// opens it read-only and shares one handle across requests; the importer
// opens it writable to build the database.
package gtfsdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"timetable.gorodtransit.org/internal/appconf"
)

// Config holds configuration options for the Client
type Config struct {
	Path     string // Path to SQLite database file
	ReadOnly bool   // Open for queries only; schema must already exist
	Env      appconf.Environment
}

// Client wraps a shared database handle. The underlying *sql.DB pools
// connections, so concurrent read-only requests need no extra locking.
type Client struct {
	config Config
	DB     *sql.DB
}

// Open opens the database at config.Path. For writable opens it also
// creates any missing tables and indexes.
func Open(config Config) (*Client, error) {
	if config.Env == appconf.Test && config.Path != ":memory:" {
		return nil, fmt.Errorf("test environment must use an in-memory database, got %q", config.Path)
	}

	dsn := config.Path
	if config.ReadOnly {
		dsn = "file:" + config.Path + "?mode=ro"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Every pooled connection to ":memory:" would get its own empty
	// database, so pin the pool to a single connection.
	if config.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if !config.ReadOnly {
		if err := createTables(db); err != nil {
			db.Close() // nolint:errcheck
			return nil, err
		}
	}

	return &Client{config: config, DB: db}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// Ping verifies the database is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

package app

import (
	"log/slog"

	"timetable.gorodtransit.org/gtfsdb"
	"timetable.gorodtransit.org/internal/appconf"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, the logger, and the shared read-only
// table store.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	Store  *gtfsdb.Client
}

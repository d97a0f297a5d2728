// Command import builds the SQLite schedule database from a static GTFS
// feed, either a zip file or a directory of CSV extracts. It is a one-time
// step run before the API server starts; the server only ever opens the
// result read-only.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"timetable.gorodtransit.org/gtfsdb"
	"timetable.gorodtransit.org/internal/logging"
)

func main() {
	_ = godotenv.Load()

	var (
		dbPath    string
		zipPath   string
		csvDir    string
		delimiter string
	)

	flag.StringVar(&dbPath, "db-path", envOr("DB_PATH", "gtfs_transport.db"), "Path for the SQLite database to build")
	flag.StringVar(&zipPath, "gtfs-zip", "", "Path to a static GTFS zip file")
	flag.StringVar(&csvDir, "csv-dir", "", "Directory with routes/stops/trips/stop_times/calendar CSV files")
	flag.StringVar(&delimiter, "delimiter", ",", "CSV field delimiter for -csv-dir imports")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if (zipPath == "") == (csvDir == "") {
		logger.Error("exactly one of -gtfs-zip or -csv-dir is required")
		os.Exit(1)
	}
	if len(delimiter) != 1 {
		logger.Error("delimiter must be a single character", "delimiter", delimiter)
		os.Exit(1)
	}

	store, err := gtfsdb.Open(gtfsdb.Config{Path: dbPath})
	if err != nil {
		logger.Error("failed to create database", "error", err, "path", dbPath)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(store, logger, "schedule_database")

	start := time.Now()
	if zipPath != "" {
		err = store.ImportZip(zipPath)
	} else {
		err = store.ImportCSVDir(csvDir, rune(delimiter[0]))
	}
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	logger.Info("import finished", "db", dbPath, "duration", time.Since(start).String())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

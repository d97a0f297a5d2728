package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"

	"timetable.gorodtransit.org/gtfsdb"
	"timetable.gorodtransit.org/internal/app"
	"timetable.gorodtransit.org/internal/appconf"
	"timetable.gorodtransit.org/internal/logging"
	"timetable.gorodtransit.org/internal/restapi"
)

func main() {
	// Deployment environments ship settings in a .env file; a missing
	// file is fine.
	_ = godotenv.Load()

	var cfg appconf.Config
	var envFlag string

	flag.IntVar(&cfg.Port, "port", 8000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&cfg.DBPath, "db-path", envOr("DB_PATH", "gtfs_transport.db"), "Path to the SQLite schedule database")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 0, "Requests per second per client (0 disables limiting)")
	flag.Parse()
	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	store, err := gtfsdb.Open(gtfsdb.Config{
		Path:     cfg.DBPath,
		ReadOnly: true,
		Env:      cfg.Env,
	})
	if err != nil {
		logger.Error("failed to open schedule database", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(store, logger, "schedule_database")

	application := &app.Application{
		Config: cfg,
		Logger: logger,
		Store:  store,
	}

	api := restapi.NewRestAPI(application)
	router := httprouter.New()
	api.SetRoutes(router)

	handler := restapi.NewRequestLoggingMiddleware(logger)(
		restapi.CompressionMiddleware(
			restapi.NewRateLimitMiddleware(cfg.RateLimit)(router)))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String(), "db", cfg.DBPath)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

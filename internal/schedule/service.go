// Package schedule answers timetable queries over the gtfsdb table store:
// arrival times at a stop, per-hour headway statistics and trip duration
// statistics, plus the route and stop lookups the API surface needs.
package schedule

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sort"
	"strconv"

	"timetable.gorodtransit.org/gtfsdb"
	"timetable.gorodtransit.org/internal/logging"
	"timetable.gorodtransit.org/internal/models"
)

// nonNumericRouteKey sorts non-numeric short names after every realistic
// route number.
const nonNumericRouteKey = 999999

// Service runs schedule queries against a shared read-only store. It keeps
// no state of its own; every result is recomputed per call.
type Service struct {
	store  *gtfsdb.Client
	logger *slog.Logger
}

func NewService(store *gtfsdb.Client, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Routes lists every route, numeric short names first in numeric order,
// then the rest alphabetically.
func (s *Service) Routes(ctx context.Context) ([]models.RouteSummary, error) {
	rows, err := s.store.ListRoutes(ctx)
	if err != nil {
		return nil, err
	}

	routes := make([]models.RouteSummary, 0, len(rows))
	for _, r := range rows {
		routes = append(routes, models.NewRouteSummary(r.ShortName, r.LongName, string(r.ID)))
	}

	sort.SliceStable(routes, func(i, j int) bool {
		ki, kj := routeOrderKey(routes[i].ShortName), routeOrderKey(routes[j].ShortName)
		if ki != kj {
			return ki < kj
		}
		return routes[i].ShortName < routes[j].ShortName
	})
	return routes, nil
}

// StopsForRoute lists the stops of a route in one direction, in route
// order. An unknown route yields an empty result, not an error.
func (s *Service) StopsForRoute(ctx context.Context, shortName string, direction int) ([]models.RouteStop, error) {
	routeID, err := s.store.RouteIDByShortName(ctx, shortName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.store.StopsForRoute(ctx, routeID, direction)
	if err != nil {
		return nil, err
	}

	stops := make([]models.RouteStop, 0, len(rows))
	for _, r := range rows {
		stops = append(stops, models.RouteStop{
			StopID:   string(r.StopID),
			StopName: r.StopName,
			Lat:      r.Lat,
			Lon:      r.Lon,
			Sequence: r.MinSequence,
		})
	}
	return stops, nil
}

func routeOrderKey(shortName string) int {
	if n, err := strconv.Atoi(shortName); err == nil && n >= 0 {
		return n
	}
	return nonNumericRouteKey
}

// logQueryFailure records the full store error before the caller degrades
// to an empty result.
func (s *Service) logQueryFailure(operation string, err error, attrs ...slog.Attr) {
	logging.LogError(s.logger, operation, err, attrs...)
}

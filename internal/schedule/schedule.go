package schedule

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sort"

	"timetable.gorodtransit.org/internal/models"
	"timetable.gorodtransit.org/internal/transittime"
)

// Schedule returns the ordered, deduplicated arrival times at a stop for a
// route, direction and day type. The result starts at the 04:00 transit-day
// boundary, so post-midnight service sorts after the evening departures.
//
// Failures never propagate: an unknown route yields an empty schedule, and
// a store failure is logged in full and degraded to an empty schedule, so
// the caller cannot tell "no service" from "query failed" at this layer.
func (s *Service) Schedule(ctx context.Context, shortName, stopName string, direction int, day models.DayType) []string {
	routeID, err := s.store.RouteIDByShortName(ctx, shortName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		s.logQueryFailure("route lookup failed", err,
			slog.String("route", shortName))
		return nil
	}

	raw, err := s.store.ArrivalTimes(ctx, routeID, direction, day.CalendarColumn(), stopName)
	if err != nil {
		s.logQueryFailure("arrival time query failed", err,
			slog.String("route", shortName),
			slog.String("stop", stopName),
			slog.Int("direction", direction),
			slog.String("day_type", day.String()))
		return nil
	}

	return OrderTimes(raw)
}

// OrderTimes normalizes raw service-day times, orders them by transit-day
// position and drops duplicates, keeping the first occurrence. Entries
// that fail to normalize are dropped silently.
func OrderTimes(raw []string) []string {
	type entry struct {
		time string
		key  int
	}

	entries := make([]entry, 0, len(raw))
	for _, r := range raw {
		normalized, ok := transittime.Normalize(r)
		if !ok {
			continue
		}
		entries = append(entries, entry{time: normalized, key: transittime.SortKey(normalized)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	seen := make(map[string]struct{}, len(entries))
	var times []string
	for _, e := range entries {
		if _, dup := seen[e.time]; dup {
			continue
		}
		seen[e.time] = struct{}{}
		times = append(times, e.time)
	}
	return times
}

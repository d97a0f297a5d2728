package schedule

import (
	"context"
	"database/sql"
	"errors"

	"timetable.gorodtransit.org/internal/models"
	"timetable.gorodtransit.org/internal/transittime"
)

// maxTripDurationMinutes bounds a believable trip run time. Five hours or
// more means the extrema came from bad data; such trips are dropped from
// the statistics entirely.
const maxTripDurationMinutes = 300

// Durations computes run-time statistics over the active trips of a
// route/direction/day-type. Returns nil when the route is unknown or no
// trip survives filtering.
//
// Durations are plain clock-minute differences of the raw arrival
// extrema. A trip crossing midnight whose feed does not use the 24+ hour
// encoding comes out non-positive and is dropped by the validity filter
// rather than special-cased.
func (s *Service) Durations(ctx context.Context, shortName string, direction int, day models.DayType) (*models.DurationStats, error) {
	routeID, err := s.store.RouteIDByShortName(ctx, shortName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	extents, err := s.store.TripExtents(ctx, routeID, direction, day.CalendarColumn())
	if err != nil {
		return nil, err
	}

	var trips []models.TripDuration
	for _, e := range extents {
		first, okFirst := transittime.ClockMinutes(e.FirstTime)
		last, okLast := transittime.ClockMinutes(e.LastTime)
		if !okFirst || !okLast {
			continue
		}

		duration := last - first
		if duration <= 0 || duration >= maxTripDurationMinutes {
			continue
		}

		firstTime, _ := transittime.Normalize(e.FirstTime)
		lastTime, _ := transittime.Normalize(e.LastTime)
		trips = append(trips, models.TripDuration{
			FirstTime: firstTime,
			LastTime:  lastTime,
			Duration:  duration,
		})
	}

	if len(trips) == 0 {
		return nil, nil
	}

	stats := &models.DurationStats{
		Min:   trips[0].Duration,
		Max:   trips[0].Duration,
		Count: len(trips),
	}
	sum := 0
	for _, trip := range trips {
		sum += trip.Duration
		if trip.Duration < stats.Min {
			stats.Min = trip.Duration
		}
		if trip.Duration > stats.Max {
			stats.Max = trip.Duration
		}
	}
	stats.Average = float64(sum) / float64(len(trips))

	if len(trips) > models.MaxSampleTrips {
		trips = trips[:models.MaxSampleTrips]
	}
	stats.Trips = trips

	return stats, nil
}

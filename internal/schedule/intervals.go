package schedule

import (
	"context"

	"timetable.gorodtransit.org/internal/models"
	"timetable.gorodtransit.org/internal/transittime"
)

// maxHeadwayMinutes bounds a believable gap between consecutive
// departures. Anything at or above three hours is a service break, not a
// headway, and is dropped rather than clamped.
const maxHeadwayMinutes = 180

// Intervals computes per-hour headway statistics for a stop. Returns nil
// when the schedule is empty.
func (s *Service) Intervals(ctx context.Context, shortName, stopName string, direction int, day models.DayType) *models.IntervalStats {
	return HourlyIntervals(s.Schedule(ctx, shortName, stopName, direction, day))
}

// HourlyIntervals derives the min and max headway observed in each hour of
// the day from an ordered schedule. Gaps are measured on the transit-day
// sort key, so a gap spanning the 04:00 boundary stays positive. Each gap
// is attributed to the wall-clock hour of its later departure: a gap that
// starts in one hour and ends in the next counts toward the latter hour.
// Hours without a valid gap report 0/0.
func HourlyIntervals(schedule []string) *models.IntervalStats {
	if len(schedule) == 0 {
		return nil
	}

	var buckets [24][]int
	for i := 1; i < len(schedule); i++ {
		hour, ok := transittime.Hour(schedule[i])
		if !ok || hour < 0 || hour > 23 {
			continue
		}

		gap := transittime.SortKey(schedule[i]) - transittime.SortKey(schedule[i-1])
		if gap <= 0 || gap >= maxHeadwayMinutes {
			continue
		}
		buckets[hour] = append(buckets[hour], gap)
	}

	stats := &models.IntervalStats{
		Hours:        make([]int, 24),
		MinIntervals: make([]int, 24),
		MaxIntervals: make([]int, 24),
	}
	for h := 0; h < 24; h++ {
		stats.Hours[h] = h
		for i, gap := range buckets[h] {
			if i == 0 || gap < stats.MinIntervals[h] {
				stats.MinIntervals[h] = gap
			}
			if gap > stats.MaxIntervals[h] {
				stats.MaxIntervals[h] = gap
			}
		}
	}
	return stats
}

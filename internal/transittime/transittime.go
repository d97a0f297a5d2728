// Package transittime handles GTFS service-day time strings. Feeds encode
// trips running past midnight with hour values of 24 and above, so that
// "25:30:00" means 01:30 on the calendar day after the service day began.
package transittime

import (
	"fmt"
	"strconv"
	"strings"
)

// DayStartMinutes is when the transit day begins. Service between midnight
// and 04:00 belongs to the previous day's timetable.
const DayStartMinutes = 4 * 60

// SortKeySentinel is returned by SortKey for unparseable input so that
// malformed entries sort after every real time instead of panicking.
const SortKeySentinel = 9999

// Normalize converts a raw service-day time such as "25:30:00" to a
// canonical 24-hour clock string ("01:30:00"). It reports false for empty
// or unparseable input. Minute and second fields are passed through
// untouched; feeds keep those as valid two-digit strings.
func Normalize(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return "", false
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hours < 0 {
		return "", false
	}
	return fmt.Sprintf("%02d:%s:%s", hours%24, parts[1], parts[2]), true
}

// SortKey maps a normalized clock time to minutes since 04:00 on the
// transit day, in [0, 1439]. "04:00:00" maps to 0 and "03:59:00" to 1439,
// so sorting by key orders a timetable that runs past midnight correctly.
// Seconds are ignored. Unparseable input yields SortKeySentinel.
func SortKey(t string) int {
	h, m, ok := splitHourMinute(t)
	if !ok {
		return SortKeySentinel
	}
	return (h*60 + m + 24*60 - DayStartMinutes) % (24 * 60)
}

// ClockMinutes returns h*60+m for the raw string without any day-rollover
// adjustment. Used for trip durations, where both endpoints come from the
// same service-day encoding.
func ClockMinutes(t string) (int, bool) {
	h, m, ok := splitHourMinute(t)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

// Hour returns the wall-clock hour of a normalized time string.
func Hour(t string) (int, bool) {
	h, _, ok := splitHourMinute(t)
	if !ok {
		return 0, false
	}
	return h, true
}

func splitHourMinute(t string) (int, int, bool) {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

package models

// DayType is the coarse service-pattern classification exposed by the API.
// Only two variants exist; any value other than "weekday" is treated as
// weekend, which keeps the original query contract where day_type defaulted
// permissively.
type DayType int

const (
	Weekday DayType = iota
	Weekend
)

// ParseDayType maps a day_type query value to a DayType. "weekday" selects
// Weekday; everything else, including empty input, selects Weekend.
func ParseDayType(s string) DayType {
	if s == "weekday" {
		return Weekday
	}
	return Weekend
}

func (d DayType) String() string {
	if d == Weekday {
		return "weekday"
	}
	return "weekend"
}

// CalendarColumn returns the calendar flag checked for this day type.
// Only two representative days are consulted: Monday stands in for all
// weekdays and Sunday for the weekend. This is a known approximation of
// the full seven-day calendar.
func (d DayType) CalendarColumn() string {
	if d == Weekday {
		return "monday"
	}
	return "sunday"
}

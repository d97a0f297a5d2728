package models

// TripDuration is one trip's run time from its earliest to its latest
// scheduled arrival, in minutes.
type TripDuration struct {
	FirstTime string `json:"first_time"`
	LastTime  string `json:"last_time"`
	Duration  int    `json:"duration"`
}

// DurationStats aggregates trip durations for a route/direction/day-type.
// Trips holds at most MaxSampleTrips entries, in retrieval order.
type DurationStats struct {
	Average float64        `json:"average"`
	Min     int            `json:"min"`
	Max     int            `json:"max"`
	Count   int            `json:"count"`
	Trips   []TripDuration `json:"trips"`
}

// MaxSampleTrips caps the detail sample included in DurationStats.
const MaxSampleTrips = 50

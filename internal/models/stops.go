package models

// RouteStop is a stop on a route in one direction, ordered by the smallest
// stop_sequence observed across that direction's trips.
type RouteStop struct {
	StopID   string  `json:"stop_id"`
	StopName string  `json:"stop_name"`
	Lat      float64 `json:"stop_lat"`
	Lon      float64 `json:"stop_lon"`
	Sequence int     `json:"stop_sequence"`
}

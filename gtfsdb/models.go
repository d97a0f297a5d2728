package gtfsdb

// Identifier types for the five GTFS relations. Feeds routinely store
// these columns as bare integers, so every SQL comparison casts the column
// to TEXT; inside the program the identifiers are opaque strings.
type (
	RouteID   string
	StopID    string
	TripID    string
	ServiceID string
)

// Route is a transit route as stored in the routes table
type Route struct {
	ID        RouteID // route_id
	ShortName string  // route_short_name
	LongName  string  // route_long_name
}

// Stop is a transit stop as stored in the stops table
type Stop struct {
	ID   StopID  // stop_id
	Name string  // stop_name
	Lat  float64 // stop_lat
	Lon  float64 // stop_lon
}

// Trip is a single vehicle journey as stored in the trips table
type Trip struct {
	ID          TripID    // trip_id
	RouteID     RouteID   // route_id
	DirectionID int       // direction_id
	ServiceID   ServiceID // service_id
}

// StopTime is one scheduled arrival within a trip
type StopTime struct {
	TripID       TripID // trip_id
	StopID       StopID // stop_id
	StopSequence int    // stop_sequence
	ArrivalTime  string // arrival_time (service-day HH:MM:SS, hours may exceed 23)
}

// Calendar holds the weekly service flags for one service_id
type Calendar struct {
	ServiceID ServiceID // service_id
	Monday    int       // monday
	Tuesday   int       // tuesday
	Wednesday int       // wednesday
	Thursday  int       // thursday
	Friday    int       // friday
	Saturday  int       // saturday
	Sunday    int       // sunday
}

// RouteStopRow is a stop on a route/direction together with the smallest
// stop_sequence seen for it across that direction's trips.
type RouteStopRow struct {
	StopID      StopID
	StopName    string
	Lat         float64
	Lon         float64
	MinSequence int
}

// TripExtent is the earliest and latest scheduled arrival of one trip.
type TripExtent struct {
	TripID    TripID
	FirstTime string
	LastTime  string
}

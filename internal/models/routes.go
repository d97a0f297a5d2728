package models

// RouteSummary is one entry in the route listing.
type RouteSummary struct {
	ShortName string `json:"route_short_name"`
	LongName  string `json:"route_long_name"`
	RouteID   string `json:"route_id"`
}

func NewRouteSummary(shortName, longName, routeID string) RouteSummary {
	return RouteSummary{
		ShortName: shortName,
		LongName:  longName,
		RouteID:   routeID,
	}
}

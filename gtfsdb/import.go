package gtfsdb

import (
	"fmt"
	"os"
	"time"

	"github.com/jamespfennell/gtfs"
)

// ImportZip loads a static GTFS zip file into the database.
func (c *Client) ImportZip(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading GTFS zip: %w", err)
	}
	return c.importStatic(data)
}

func (c *Client) importStatic(b []byte) error {
	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return fmt.Errorf("error parsing GTFS feed: %w", err)
	}

	for _, r := range staticData.Routes {
		route := Route{
			ID:        RouteID(r.Id),
			ShortName: r.ShortName,
			LongName:  r.LongName,
		}
		if err := InsertRoute(c.DB, route); err != nil {
			return err
		}
	}

	for _, s := range staticData.Stops {
		stop := Stop{
			ID:   StopID(s.Id),
			Name: s.Name,
		}
		if s.Latitude != nil {
			stop.Lat = *s.Latitude
		}
		if s.Longitude != nil {
			stop.Lon = *s.Longitude
		}
		if err := InsertStop(c.DB, stop); err != nil {
			return err
		}
	}

	for _, svc := range staticData.Services {
		calendar := Calendar{
			ServiceID: ServiceID(svc.Id),
			Monday:    boolToInt(svc.Monday),
			Tuesday:   boolToInt(svc.Tuesday),
			Wednesday: boolToInt(svc.Wednesday),
			Thursday:  boolToInt(svc.Thursday),
			Friday:    boolToInt(svc.Friday),
			Saturday:  boolToInt(svc.Saturday),
			Sunday:    boolToInt(svc.Sunday),
		}
		if err := InsertCalendar(c.DB, calendar); err != nil {
			return err
		}
	}

	var stopTimes []StopTime
	for _, t := range staticData.Trips {
		trip := Trip{
			ID:          TripID(t.ID),
			RouteID:     RouteID(t.Route.Id),
			DirectionID: int(t.DirectionId),
			ServiceID:   ServiceID(t.Service.Id),
		}
		if err := InsertTrip(c.DB, trip); err != nil {
			return err
		}

		for _, st := range t.StopTimes {
			stopTimes = append(stopTimes, StopTime{
				TripID:       TripID(t.ID),
				StopID:       StopID(st.Stop.Id),
				StopSequence: st.StopSequence,
				ArrivalTime:  serviceDayTime(st.ArrivalTime),
			})
		}
	}

	return InsertStopTimes(c.DB, stopTimes)
}

// serviceDayTime renders a duration since midnight of the service day as
// H:MM:SS, keeping hour values of 24 and above for post-midnight arrivals.
func serviceDayTime(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package gtfsdb

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/spkg/bom"
)

// CSV row mappings for the five schedule tables. Only the columns the
// store cares about are read; extra columns in the extract are ignored.
type routeCSV struct {
	ID        string `csv:"route_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
}

type stopCSV struct {
	ID   string `csv:"stop_id"`
	Name string `csv:"stop_name"`
	Lat  string `csv:"stop_lat"`
	Lon  string `csv:"stop_lon"`
}

type tripCSV struct {
	ID          string `csv:"trip_id"`
	RouteID     string `csv:"route_id"`
	DirectionID string `csv:"direction_id"`
	ServiceID   string `csv:"service_id"`
}

type stopTimeCSV struct {
	TripID       string `csv:"trip_id"`
	StopID       string `csv:"stop_id"`
	StopSequence string `csv:"stop_sequence"`
	ArrivalTime  string `csv:"arrival_time"`
}

type calendarCSV struct {
	ServiceID string `csv:"service_id"`
	Monday    string `csv:"monday"`
	Tuesday   string `csv:"tuesday"`
	Wednesday string `csv:"wednesday"`
	Thursday  string `csv:"thursday"`
	Friday    string `csv:"friday"`
	Saturday  string `csv:"saturday"`
	Sunday    string `csv:"sunday"`
}

// ImportCSVDir loads the five schedule tables from CSV files in dir. Each
// table is read from "<name>.txt" or "<name>.csv", whichever exists; delim
// supports the semicolon-separated extracts some agencies publish. Rows
// with unparseable numeric fields are skipped rather than failing the
// whole import.
func (c *Client) ImportCSVDir(dir string, delim rune) error {
	if err := importCSVTable(dir, "routes", delim, func(rows []*routeCSV) error {
		for _, r := range rows {
			route := Route{ID: RouteID(r.ID), ShortName: r.ShortName, LongName: r.LongName}
			if err := InsertRoute(c.DB, route); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := importCSVTable(dir, "stops", delim, func(rows []*stopCSV) error {
		for _, r := range rows {
			lat, latErr := strconv.ParseFloat(r.Lat, 64)
			lon, lonErr := strconv.ParseFloat(r.Lon, 64)
			if latErr != nil || lonErr != nil {
				continue
			}
			stop := Stop{ID: StopID(r.ID), Name: r.Name, Lat: lat, Lon: lon}
			if err := InsertStop(c.DB, stop); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := importCSVTable(dir, "calendar", delim, func(rows []*calendarCSV) error {
		for _, r := range rows {
			calendar := Calendar{
				ServiceID: ServiceID(r.ServiceID),
				Monday:    flagToInt(r.Monday),
				Tuesday:   flagToInt(r.Tuesday),
				Wednesday: flagToInt(r.Wednesday),
				Thursday:  flagToInt(r.Thursday),
				Friday:    flagToInt(r.Friday),
				Saturday:  flagToInt(r.Saturday),
				Sunday:    flagToInt(r.Sunday),
			}
			if err := InsertCalendar(c.DB, calendar); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := importCSVTable(dir, "trips", delim, func(rows []*tripCSV) error {
		for _, r := range rows {
			direction, err := strconv.Atoi(r.DirectionID)
			if err != nil {
				direction = 0
			}
			trip := Trip{
				ID:          TripID(r.ID),
				RouteID:     RouteID(r.RouteID),
				DirectionID: direction,
				ServiceID:   ServiceID(r.ServiceID),
			}
			if err := InsertTrip(c.DB, trip); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return importCSVTable(dir, "stop_times", delim, func(rows []*stopTimeCSV) error {
		stopTimes := make([]StopTime, 0, len(rows))
		for _, r := range rows {
			seq, err := strconv.Atoi(r.StopSequence)
			if err != nil {
				continue
			}
			stopTimes = append(stopTimes, StopTime{
				TripID:       TripID(r.TripID),
				StopID:       StopID(r.StopID),
				StopSequence: seq,
				ArrivalTime:  r.ArrivalTime,
			})
		}
		return InsertStopTimes(c.DB, stopTimes)
	})
}

// importCSVTable opens the CSV file for a table and hands the decoded rows
// to store.
func importCSVTable[T any](dir, table string, delim rune, store func([]*T) error) error {
	f, err := openTableFile(dir, table)
	if err != nil {
		return err
	}
	defer f.Close() // nolint:errcheck

	rows, err := decodeCSV[T](f, delim)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", table, err)
	}
	return store(rows)
}

func openTableFile(dir, table string) (*os.File, error) {
	for _, ext := range []string{".txt", ".csv"} {
		path := filepath.Join(dir, table+ext)
		f, err := os.Open(path)
		if err == nil {
			return f, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error opening %s: %w", path, err)
		}
	}
	return nil, fmt.Errorf("no CSV file for table %s in %s", table, dir)
}

func decodeCSV[T any](f io.Reader, delim rune) ([]*T, error) {
	reader := csv.NewReader(bom.NewReader(f))
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows []*T
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func flagToInt(s string) int {
	if s == "1" {
		return 1
	}
	return 0
}

package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"timetable.gorodtransit.org/gtfsdb"
	"timetable.gorodtransit.org/internal/app"
	"timetable.gorodtransit.org/internal/appconf"
)

// createTestApi creates a RestAPI over an in-memory store seeded with one
// small network: route "1" with two weekday trips, plus two more routes
// for listing.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	client, err := gtfsdb.Open(gtfsdb.Config{Path: ":memory:", Env: appconf.Test})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	db := client.DB
	require.NoError(t, gtfsdb.InsertRoute(db, gtfsdb.Route{ID: "4126", ShortName: "1", LongName: "Center - Depot"}))
	require.NoError(t, gtfsdb.InsertRoute(db, gtfsdb.Route{ID: "r10", ShortName: "10", LongName: "Ring"}))
	require.NoError(t, gtfsdb.InsertRoute(db, gtfsdb.Route{ID: "rb1", ShortName: "B1", LongName: "Express"}))

	require.NoError(t, gtfsdb.InsertStop(db, gtfsdb.Stop{ID: "s1", Name: "Center", Lat: 55.75, Lon: 37.62}))
	require.NoError(t, gtfsdb.InsertStop(db, gtfsdb.Stop{ID: "s2", Name: "Market", Lat: 55.76, Lon: 37.63}))
	require.NoError(t, gtfsdb.InsertStop(db, gtfsdb.Stop{ID: "s3", Name: "Depot", Lat: 55.77, Lon: 37.64}))

	require.NoError(t, gtfsdb.InsertCalendar(db, gtfsdb.Calendar{ServiceID: "wk", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1}))

	require.NoError(t, gtfsdb.InsertTrip(db, gtfsdb.Trip{ID: "t1", RouteID: "4126", DirectionID: 0, ServiceID: "wk"}))
	require.NoError(t, gtfsdb.InsertTrip(db, gtfsdb.Trip{ID: "t2", RouteID: "4126", DirectionID: 0, ServiceID: "wk"}))

	require.NoError(t, gtfsdb.InsertStopTimes(db, []gtfsdb.StopTime{
		{TripID: "t1", StopID: "s1", StopSequence: 1, ArrivalTime: "06:00:00"},
		{TripID: "t1", StopID: "s2", StopSequence: 2, ArrivalTime: "06:20:00"},
		{TripID: "t1", StopID: "s3", StopSequence: 3, ArrivalTime: "06:40:00"},
		{TripID: "t2", StopID: "s1", StopSequence: 1, ArrivalTime: "07:00:00"},
		{TripID: "t2", StopID: "s2", StopSequence: 2, ArrivalTime: "07:30:00"},
		{TripID: "t2", StopID: "s3", StopSequence: 3, ArrivalTime: "09:10:00"},
	}))

	application := &app.Application{
		Config: appconf.Config{Env: appconf.Test},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:  client,
	}

	return NewRestAPI(application)
}

// serveApiAndRetrieveEndpoint round-trips one request through a test
// server and decodes the JSON body.
func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, map[string]any) {
	t.Helper()

	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

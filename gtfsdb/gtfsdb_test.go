package gtfsdb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable.gorodtransit.org/internal/appconf"
)

func createTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := Open(Config{Path: ":memory:", Env: appconf.Test})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// seedSmallNetwork loads one route with two directions, two services
// (weekday-only and sunday-only) and a handful of stop times.
func seedSmallNetwork(t *testing.T, client *Client) {
	t.Helper()
	db := client.DB

	require.NoError(t, InsertRoute(db, Route{ID: "4126", ShortName: "1", LongName: "Center - Depot"}))
	require.NoError(t, InsertRoute(db, Route{ID: "4127", ShortName: "10", LongName: "Ring"}))

	require.NoError(t, InsertStop(db, Stop{ID: "s1", Name: "Center", Lat: 55.75, Lon: 37.62}))
	require.NoError(t, InsertStop(db, Stop{ID: "s2", Name: "Market", Lat: 55.76, Lon: 37.63}))
	require.NoError(t, InsertStop(db, Stop{ID: "s3", Name: "Depot", Lat: 55.77, Lon: 37.64}))

	require.NoError(t, InsertCalendar(db, Calendar{ServiceID: "wk", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1}))
	require.NoError(t, InsertCalendar(db, Calendar{ServiceID: "su", Saturday: 1, Sunday: 1}))

	require.NoError(t, InsertTrip(db, Trip{ID: "t1", RouteID: "4126", DirectionID: 0, ServiceID: "wk"}))
	require.NoError(t, InsertTrip(db, Trip{ID: "t2", RouteID: "4126", DirectionID: 0, ServiceID: "su"}))
	require.NoError(t, InsertTrip(db, Trip{ID: "t3", RouteID: "4126", DirectionID: 1, ServiceID: "wk"}))

	require.NoError(t, InsertStopTimes(db, []StopTime{
		{TripID: "t1", StopID: "s1", StopSequence: 1, ArrivalTime: "06:00:00"},
		{TripID: "t1", StopID: "s2", StopSequence: 2, ArrivalTime: "06:20:00"},
		{TripID: "t1", StopID: "s3", StopSequence: 3, ArrivalTime: "06:40:00"},
		{TripID: "t2", StopID: "s1", StopSequence: 1, ArrivalTime: "07:00:00"},
		{TripID: "t2", StopID: "s2", StopSequence: 2, ArrivalTime: "07:25:00"},
		{TripID: "t3", StopID: "s3", StopSequence: 1, ArrivalTime: "08:00:00"},
		{TripID: "t3", StopID: "s2", StopSequence: 2, ArrivalTime: "08:15:00"},
		{TripID: "t3", StopID: "s1", StopSequence: 3, ArrivalTime: "08:30:00"},
	}))
}

func TestOpenRejectsFileDBInTestEnv(t *testing.T) {
	_, err := Open(Config{Path: "real.db", Env: appconf.Test})
	assert.Error(t, err)
}

func TestListRoutes(t *testing.T) {
	client := createTestClient(t)
	seedSmallNetwork(t, client)

	routes, err := client.ListRoutes(context.Background())
	require.NoError(t, err)
	assert.Len(t, routes, 2)

	names := make(map[string]string)
	for _, r := range routes {
		names[r.ShortName] = r.LongName
	}
	assert.Equal(t, "Center - Depot", names["1"])
	assert.Equal(t, "Ring", names["10"])
}

func TestRouteIDByShortName(t *testing.T) {
	client := createTestClient(t)
	seedSmallNetwork(t, client)
	ctx := context.Background()

	id, err := client.RouteIDByShortName(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, RouteID("4126"), id)

	_, err = client.RouteIDByShortName(ctx, "99")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStopsForRouteOrdersByMinSequence(t *testing.T) {
	client := createTestClient(t)
	seedSmallNetwork(t, client)

	stops, err := client.StopsForRoute(context.Background(), "4126", 0)
	require.NoError(t, err)
	require.Len(t, stops, 3)

	assert.Equal(t, StopID("s1"), stops[0].StopID)
	assert.Equal(t, 1, stops[0].MinSequence)
	assert.Equal(t, StopID("s2"), stops[1].StopID)
	assert.Equal(t, StopID("s3"), stops[2].StopID)

	// Reverse direction has its own ordering.
	stops, err = client.StopsForRoute(context.Background(), "4126", 1)
	require.NoError(t, err)
	require.Len(t, stops, 3)
	assert.Equal(t, StopID("s3"), stops[0].StopID)
}

func TestStopsForRouteUnknownRoute(t *testing.T) {
	client := createTestClient(t)
	seedSmallNetwork(t, client)

	stops, err := client.StopsForRoute(context.Background(), "nope", 0)
	require.NoError(t, err)
	assert.Empty(t, stops)
}

func TestArrivalTimesFiltersByCalendarFlag(t *testing.T) {
	client := createTestClient(t)
	seedSmallNetwork(t, client)
	ctx := context.Background()

	// Monday flag selects only the weekday trip at Market.
	times, err := client.ArrivalTimes(ctx, "4126", 0, "monday", "Market")
	require.NoError(t, err)
	assert.Equal(t, []string{"06:20:00"}, times)

	// Sunday flag selects only the weekend trip.
	times, err = client.ArrivalTimes(ctx, "4126", 0, "sunday", "Market")
	require.NoError(t, err)
	assert.Equal(t, []string{"07:25:00"}, times)
}

func TestArrivalTimesDeduplicates(t *testing.T) {
	client := createTestClient(t)
	seedSmallNetwork(t, client)
	db := client.DB

	// A second weekday trip arriving at the same minute.
	require.NoError(t, InsertTrip(db, Trip{ID: "t4", RouteID: "4126", DirectionID: 0, ServiceID: "wk"}))
	require.NoError(t, InsertStopTimes(db, []StopTime{
		{TripID: "t4", StopID: "s2", StopSequence: 1, ArrivalTime: "06:20:00"},
	}))

	times, err := client.ArrivalTimes(context.Background(), "4126", 0, "monday", "Market")
	require.NoError(t, err)
	assert.Equal(t, []string{"06:20:00"}, times)
}

func TestArrivalTimesRejectsUnknownColumn(t *testing.T) {
	client := createTestClient(t)
	seedSmallNetwork(t, client)

	_, err := client.ArrivalTimes(context.Background(), "4126", 0, "yesterday", "Market")
	assert.Error(t, err)
}

func TestTripExtents(t *testing.T) {
	client := createTestClient(t)
	seedSmallNetwork(t, client)
	db := client.DB

	// A weekday trip with a single stop row must be excluded.
	require.NoError(t, InsertTrip(db, Trip{ID: "t5", RouteID: "4126", DirectionID: 0, ServiceID: "wk"}))
	require.NoError(t, InsertStopTimes(db, []StopTime{
		{TripID: "t5", StopID: "s1", StopSequence: 1, ArrivalTime: "09:00:00"},
	}))

	extents, err := client.TripExtents(context.Background(), "4126", 0, "monday")
	require.NoError(t, err)
	require.Len(t, extents, 1)
	assert.Equal(t, TripID("t1"), extents[0].TripID)
	assert.Equal(t, "06:00:00", extents[0].FirstTime)
	assert.Equal(t, "06:40:00", extents[0].LastTime)
}

func TestNumericIdentifiersCoerceToText(t *testing.T) {
	client := createTestClient(t)
	db := client.DB

	// Feeds sometimes carry numeric identifiers; comparisons must still
	// match their text form.
	_, err := db.Exec(`INSERT INTO routes (route_id, route_short_name, route_long_name) VALUES (4126, 1, 'Numeric');`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO stops (stop_id, stop_name, stop_lat, stop_lon) VALUES (77, 'Center', 55.7, 37.6);`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO calendar (service_id, monday) VALUES (5, 1);`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO trips (trip_id, route_id, direction_id, service_id) VALUES (9001, 4126, 0, 5);`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO stop_times (trip_id, stop_id, stop_sequence, arrival_time) VALUES (9001, 77, 1, '10:00:00');`)
	require.NoError(t, err)

	ctx := context.Background()

	id, err := client.RouteIDByShortName(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, RouteID("4126"), id)

	times, err := client.ArrivalTimes(ctx, id, 0, "monday", "Center")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00:00"}, times)
}

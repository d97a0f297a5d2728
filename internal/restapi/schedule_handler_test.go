package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveApiAndRetrieveEndpoint(t, api, "/api/route/1/schedule?stop_name=Center&day_type=weekday")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "1", body["route"])
	assert.Equal(t, "Center", body["stop"])
	assert.Equal(t, "weekday", body["day_type"])
	assert.EqualValues(t, 2, body["count"])

	times, ok := body["schedule"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"06:00:00", "07:00:00"}, times)
}

func TestScheduleHandlerMissingStopName(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveApiAndRetrieveEndpoint(t, api, "/api/route/1/schedule")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	fieldErrors, ok := body["fieldErrors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "stop_name")
}

func TestScheduleHandlerUnknownStop(t *testing.T) {
	api := createTestApi(t)

	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/route/1/schedule?stop_name=Nowhere")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestScheduleHandlerNoWeekendService(t *testing.T) {
	api := createTestApi(t)

	// The seeded service runs Monday through Friday only.
	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/route/1/schedule?stop_name=Center&day_type=weekend")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

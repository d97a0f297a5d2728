package restapi

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"timetable.gorodtransit.org/internal/models"
)

// extractShortName retrieves the route short name path parameter.
func extractShortName(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("shortName")
}

// parseDirection reads the direction query parameter, defaulting to 0.
// A non-integer value records a field error.
func parseDirection(params url.Values, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get("direction")
	if val == "" {
		return 0, fieldErrors
	}

	direction, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors["direction"] = append(fieldErrors["direction"], "Invalid field value for field \"direction\".")
		return 0, fieldErrors
	}
	return direction, fieldErrors
}

// parseDayType maps the day_type query parameter to a DayType. Anything
// except "weekday" means weekend, so this cannot fail.
func parseDayType(params url.Values) models.DayType {
	return models.ParseDayType(params.Get("day_type"))
}

// requireStopName reads the stop_name query parameter, recording a field
// error when it is missing.
func requireStopName(params url.Values, fieldErrors map[string][]string) (string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	stopName := params.Get("stop_name")
	if stopName == "" {
		fieldErrors["stop_name"] = append(fieldErrors["stop_name"], "Field \"stop_name\" is required.")
	}
	return stopName, fieldErrors
}

package restapi

import (
	"net/http"
)

func (api *RestAPI) intervalsHandler(w http.ResponseWriter, r *http.Request) {
	shortName := extractShortName(r)
	query := r.URL.Query()

	stopName, fieldErrors := requireStopName(query, nil)
	direction, fieldErrors := parseDirection(query, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	day := parseDayType(query)

	intervals := api.Schedules.Intervals(r.Context(), shortName, stopName, direction, day)
	if intervals == nil {
		api.notFoundResponse(w, r, "no intervals found for stop "+stopName)
		return
	}

	api.sendJSON(w, r, http.StatusOK, map[string]any{
		"route":     shortName,
		"stop":      stopName,
		"direction": direction,
		"day_type":  day.String(),
		"intervals": intervals,
	})
}

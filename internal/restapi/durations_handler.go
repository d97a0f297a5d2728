package restapi

import (
	"net/http"
)

func (api *RestAPI) durationsHandler(w http.ResponseWriter, r *http.Request) {
	shortName := extractShortName(r)
	query := r.URL.Query()

	direction, fieldErrors := parseDirection(query, nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	day := parseDayType(query)

	durations, err := api.Schedules.Durations(r.Context(), shortName, direction, day)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if durations == nil {
		api.notFoundResponse(w, r, "no trip duration data found for route "+shortName)
		return
	}

	api.sendJSON(w, r, http.StatusOK, map[string]any{
		"route":     shortName,
		"direction": direction,
		"day_type":  day.String(),
		"durations": durations,
	})
}

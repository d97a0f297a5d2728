package restapi

import (
	"net/http"
)

func (api *RestAPI) stopsForRouteHandler(w http.ResponseWriter, r *http.Request) {
	shortName := extractShortName(r)

	direction, fieldErrors := parseDirection(r.URL.Query(), nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	stops, err := api.Schedules.StopsForRoute(r.Context(), shortName, direction)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if len(stops) == 0 {
		api.notFoundResponse(w, r, "route "+shortName+" not found or has no stops")
		return
	}

	api.sendJSON(w, r, http.StatusOK, map[string]any{
		"route":     shortName,
		"direction": direction,
		"stops":     stops,
		"count":     len(stops),
	})
}

package restapi

import (
	"net/http"

	"timetable.gorodtransit.org/internal/models"
)

func (api *RestAPI) routesHandler(w http.ResponseWriter, r *http.Request) {
	routes, err := api.Schedules.Routes(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if routes == nil {
		routes = []models.RouteSummary{}
	}

	api.sendJSON(w, r, http.StatusOK, map[string]any{
		"routes": routes,
		"count":  len(routes),
	})
}

package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers all endpoints on the router. httprouter stores path
// parameters in the request context, so handlers stay plain
// http.HandlerFuncs.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", api.rootHandler)
	router.HandlerFunc(http.MethodGet, "/health", api.healthHandler)
	router.HandlerFunc(http.MethodGet, "/api/routes", api.routesHandler)
	router.HandlerFunc(http.MethodGet, "/api/route/:shortName/stops", api.stopsForRouteHandler)
	router.HandlerFunc(http.MethodGet, "/api/route/:shortName/schedule", api.scheduleHandler)
	router.HandlerFunc(http.MethodGet, "/api/route/:shortName/intervals", api.intervalsHandler)
	router.HandlerFunc(http.MethodGet, "/api/route/:shortName/durations", api.durationsHandler)
}

package restapi

import (
	"net/http"
	"time"
)

func (api *RestAPI) rootHandler(w http.ResponseWriter, r *http.Request) {
	api.sendJSON(w, r, http.StatusOK, map[string]any{
		"message":   "timetable API is running",
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendJSON(w, r, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

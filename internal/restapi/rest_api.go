// Package restapi exposes the schedule query service over HTTP.
package restapi

import (
	"timetable.gorodtransit.org/internal/app"
	"timetable.gorodtransit.org/internal/schedule"
)

type RestAPI struct {
	*app.Application
	Schedules *schedule.Service
}

// NewRestAPI creates a new RestAPI instance backed by the application's
// shared store.
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{
		Application: application,
		Schedules:   schedule.NewService(application.Store, application.Logger),
	}
}

package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, app.countRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireAuth)

	mux := pat.New()

	// Cities and location
	mux.Get("/active-cities/", standardMiddleware.ThenFunc(app.cityHandler.GetActiveCities))
	mux.Post("/location/resolve", standardMiddleware.ThenFunc(app.locationHandler.Resolve))
	mux.Post("/location/city", authMiddleware.ThenFunc(app.locationHandler.RememberCity))
	mux.Get("/location/city", authMiddleware.ThenFunc(app.locationHandler.SelectedCity))

	// Garages
	mux.Post("/garages/search", standardMiddleware.ThenFunc(app.garageHandler.Search))
	mux.Get("/garage/vertical/:tag/brands", standardMiddleware.ThenFunc(app.garageHandler.GetVerticalBrands))
	mux.Get("/garage/:id", standardMiddleware.ThenFunc(app.garageHandler.GetGarageByID))
	mux.Post("/garage/services", standardMiddleware.ThenFunc(app.garageHandler.GetGarageServices))
	mux.Get("/slots", standardMiddleware.ThenFunc(app.garageHandler.GetSlots))

	// Booking wizard
	mux.Post("/booking/wizard", authMiddleware.ThenFunc(app.bookingHandler.StartDraft))
	mux.Get("/booking/wizard/:id", authMiddleware.ThenFunc(app.bookingHandler.GetDraft))
	mux.Post("/booking/wizard/:id/select", authMiddleware.ThenFunc(app.bookingHandler.Select))
	mux.Post("/booking/wizard/:id/next", authMiddleware.ThenFunc(app.bookingHandler.Next))
	mux.Post("/booking/wizard/:id/previous", authMiddleware.ThenFunc(app.bookingHandler.Previous))
	mux.Post("/booking/wizard/:id/jump", authMiddleware.ThenFunc(app.bookingHandler.Jump))
	mux.Post("/booking/wizard/:id/submit", authMiddleware.ThenFunc(app.bookingHandler.Submit))

	// Profile: vehicles
	mux.Get("/subscriber/vehicles", authMiddleware.ThenFunc(app.vehicleHandler.GetVehicles))
	mux.Post("/subscriber/vehicle", authMiddleware.ThenFunc(app.vehicleHandler.CreateVehicle))
	mux.Del("/subscriber/vehicle/:id", authMiddleware.ThenFunc(app.vehicleHandler.DeleteVehicle))
	mux.Post("/subscriber/vehicle/image", authMiddleware.ThenFunc(app.vehicleHandler.UploadImage))
	mux.Get("/brands/", standardMiddleware.ThenFunc(app.vehicleHandler.GetBrands))
	mux.Get("/models/:brand_id", standardMiddleware.ThenFunc(app.vehicleHandler.GetModels))

	// Profile: addresses
	mux.Get("/subscriber/addresses", authMiddleware.ThenFunc(app.addressHandler.GetAddresses))
	mux.Post("/subscriber/address", authMiddleware.ThenFunc(app.addressHandler.CreateAddress))

	// Sessions
	mux.Post("/auth/session", authMiddleware.ThenFunc(app.CreateSessionHandler))
	mux.Del("/auth/session", authMiddleware.ThenFunc(app.DeleteSessionHandler))

	// Live updates
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))

	mux.Get("/metrics", promhttp.Handler())

	return mux
}

// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fixfirst/fixfirst/internal/api"
	"github.com/fixfirst/fixfirst/internal/api/address"
	"github.com/fixfirst/fixfirst/internal/api/adminphotos"
	"github.com/fixfirst/fixfirst/internal/api/gallery"
	"github.com/fixfirst/fixfirst/internal/api/schedule"
	"github.com/fixfirst/fixfirst/internal/api/site"
	"github.com/fixfirst/fixfirst/internal/booking"
	"github.com/fixfirst/fixfirst/internal/config"
	"github.com/fixfirst/fixfirst/internal/db"
	"github.com/fixfirst/fixfirst/internal/email"
	"github.com/fixfirst/fixfirst/internal/geocode"
	"github.com/fixfirst/fixfirst/internal/uploads"
)

func newServer(cfg *config.Config, database *db.DB, uploadStore *uploads.Store, sender email.Sender) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	// Wire handler dependencies
	gallery.InitHandlers(database, uploadStore)
	adminphotos.InitHandlers(database, uploadStore)
	schedule.InitHandlers(booking.NewOccupiedStore(), sender, cfg.Booking.NotifyEmail, booking.SystemClock())
	address.InitHandlers(geocode.NewClient(
		cfg.Geocode.BaseURL,
		cfg.Geocode.APIKey,
		geocode.WithLimit(cfg.Geocode.Limit),
		geocode.WithTimeout(time.Duration(cfg.Geocode.Timeout)),
	))

	registerRoutes(router, cfg)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config) {
	// Main page handler
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		gallery.HandleHomePage(w, r)
	})

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Marketing pages
	mux.HandleFunc("/commercial", site.HandleCommercial)
	mux.HandleFunc("/residential", site.HandleResidential)

	// Gallery upload
	mux.HandleFunc("POST /upload", gallery.HandleUpload)

	// Scheduling routes
	mux.HandleFunc("GET /schedule/days", schedule.HandleDays)
	mux.HandleFunc("GET /schedule/slots", schedule.HandleAvailability)
	mux.HandleFunc("GET /schedule/availability", schedule.HandleAvailability)
	mux.HandleFunc("GET /api/times", schedule.HandleTimes)
	mux.HandleFunc("GET /api/days", schedule.HandleServiceDays)
	mux.HandleFunc("GET /api/applianceTypes", schedule.HandleApplianceTypes)
	mux.HandleFunc("POST /schedule", schedule.HandleSchedule)

	// Address autocomplete proxy
	mux.HandleFunc("GET /api/address-search", address.HandleAddressSearch)

	// Photo admin
	mux.HandleFunc("/admin/photos", adminphotos.HandlePhotosPage)
	mux.HandleFunc("/admin/photos/", adminphotos.HandlePhoto)

	// Uploads are mounted explicitly so the configured directory can never
	// widen the tree exposed under /static/.
	uploadsFS := http.FileServer(http.Dir(cfg.Uploads.Dir))
	mux.Handle("/static/uploads/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().
			Str("path", r.URL.Path).
			Str("uploads_dir", cfg.Uploads.Dir).
			Msg("Upload file request")
		http.StripPrefix("/static/uploads/", uploadsFS).ServeHTTP(w, r)
	}))

	// Remaining site assets come from the fixed static root.
	staticFS := http.FileServer(http.Dir("static"))
	mux.Handle("/static/", http.StripPrefix("/static/", staticFS))
}

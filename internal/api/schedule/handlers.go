// internal/api/schedule/handlers.go
package schedule

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/fixfirst/fixfirst/internal/api/apiutil"
	"github.com/fixfirst/fixfirst/internal/booking"
	"github.com/fixfirst/fixfirst/internal/email"
)

const upcomingDayCount = 7

var (
	occupied    *booking.OccupiedStore
	sender      email.Sender
	notifyEmail string
	clock       booking.Clock
)

// InitHandlers must be called during server startup before handling
// requests. A nil sender disables notification delivery; bookings are still
// accepted.
func InitHandlers(store *booking.OccupiedStore, s email.Sender, recipient string, c booking.Clock) {
	occupied = store
	sender = s
	notifyEmail = recipient
	clock = c
	if clock == nil {
		clock = booking.SystemClock()
	}
}

// GET /schedule/days
func HandleDays(w http.ResponseWriter, r *http.Request) {
	apiutil.WriteJSON(w, http.StatusOK, booking.UpcomingDays(clock, upcomingDayCount))
}

// GET /schedule/slots and GET /schedule/availability share one contract; the
// frontend historically called both.
func HandleAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	availability, err := booking.AvailabilityFor(occupied, date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, availability)
}

// GET /api/times
func HandleTimes(w http.ResponseWriter, r *http.Request) {
	apiutil.WriteJSON(w, http.StatusOK, booking.TimeSlots)
}

// GET /api/days
func HandleServiceDays(w http.ResponseWriter, r *http.Request) {
	apiutil.WriteJSON(w, http.StatusOK, booking.ServiceDays)
}

// GET /api/applianceTypes
func HandleApplianceTypes(w http.ResponseWriter, r *http.Request) {
	apiutil.WriteJSON(w, http.StatusOK, booking.ApplianceTypes)
}

// POST /schedule
//
// The acknowledgement is unconditional: the notification is dispatched after
// the response is on its way and its outcome never reaches the caller.
func HandleSchedule(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	req := booking.Request{
		Day:           strings.TrimSpace(r.PostFormValue("day")),
		Time:          strings.TrimSpace(r.PostFormValue("time")),
		ApplianceType: strings.TrimSpace(r.PostFormValue("applianceType")),
		Description:   r.PostFormValue("description"),
		Address:       r.PostFormValue("address"),
		Phone:         r.PostFormValue("phone"),
	}
	// Older frontend builds posted the short field name.
	if req.ApplianceType == "" {
		req.ApplianceType = strings.TrimSpace(r.PostFormValue("appliance"))
	}

	if req.Day == "" {
		http.Error(w, "day is required", http.StatusBadRequest)
		return
	}
	if req.Time == "" {
		http.Error(w, "time is required", http.StatusBadRequest)
		return
	}

	occupied.Add(req.Day, req.Time)

	logger.Info().
		Str("day", req.Day).
		Str("time", req.Time).
		Str("appliance", req.ApplianceType).
		Msg("Booking accepted")

	notification := email.BuildBookingNotification(req)
	email.SendBookingNotification(r.Context(), sender, notifyEmail, notification, logger)

	apiutil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
	"github.com/rs/zerolog"

	"github.com/fixfirst/fixfirst/internal/booking"
)

const bookingEmailTimeout = 5 * time.Second

type BookingNotification struct {
	Subject string
	Body    string
}

// BuildBookingNotification composes the operator email for a booking
// request. Fields are free-form and included verbatim; the phone number is
// normalized to E.164 when it parses as a US number.
func BuildBookingNotification(req booking.Request) BookingNotification {
	appliance := strings.TrimSpace(req.ApplianceType)
	if appliance == "" {
		appliance = "Appliance"
	}

	subject := fmt.Sprintf("New service request: %s on %s at %s", appliance, req.Day, req.Time)

	var body strings.Builder
	body.WriteString("A new service request came in.\n\n")
	fmt.Fprintf(&body, "Day:         %s\n", req.Day)
	fmt.Fprintf(&body, "Time:        %s\n", req.Time)
	fmt.Fprintf(&body, "Appliance:   %s\n", req.ApplianceType)
	fmt.Fprintf(&body, "Description: %s\n", req.Description)
	fmt.Fprintf(&body, "Address:     %s\n", req.Address)
	fmt.Fprintf(&body, "Phone:       %s\n", formatPhone(req.Phone))

	return BookingNotification{Subject: subject, Body: body.String()}
}

// formatPhone returns the E.164 form when the input parses as a valid US
// number, otherwise the raw input unchanged.
func formatPhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	num, err := phonenumbers.Parse(trimmed, "US")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// SendBookingNotification delivers the notification on a background
// goroutine and returns immediately. Delivery failures are logged and
// swallowed; the booking response never depends on the outcome.
func SendBookingNotification(ctx context.Context, sender Sender, recipient string, notification BookingNotification, logger *zerolog.Logger) {
	if sender == nil {
		if logger != nil {
			logger.Warn().Msg("Email sender not configured, skipping booking notification")
		}
		return
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		if logger != nil {
			logger.Warn().Msg("No notification recipient configured, skipping booking notification")
		}
		return
	}

	go func() {
		sendCtx, cancel := newEmailContext(ctx, bookingEmailTimeout)
		defer cancel()
		if err := sender.Send(sendCtx, recipient, notification.Subject, notification.Body); err != nil && logger != nil {
			logger.Error().Err(err).Str("recipient", recipient).Msg("Failed to send booking notification")
		}
	}()
}

package email

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixfirst/fixfirst/internal/booking"
)

type fakeSender struct {
	calls    int32
	fail     bool
	received chan string
}

func newFakeSender(fail bool) *fakeSender {
	return &fakeSender{fail: fail, received: make(chan string, 1)}
}

func (f *fakeSender) Send(ctx context.Context, recipient, subject, body string) error {
	atomic.AddInt32(&f.calls, 1)
	select {
	case f.received <- body:
	default:
	}
	if f.fail {
		return errors.New("provider unreachable")
	}
	return nil
}

func sampleRequest() booking.Request {
	return booking.Request{
		Day:           "2026-03-02",
		Time:          "10:00 AM",
		ApplianceType: "Dryer",
		Description:   "won't start",
		Address:       "123 Main St",
		Phone:         "(555) 010-0000",
	}
}

func TestBuildBookingNotificationIncludesAllFields(t *testing.T) {
	notification := BuildBookingNotification(sampleRequest())

	if !strings.Contains(notification.Subject, "Dryer") || !strings.Contains(notification.Subject, "2026-03-02") {
		t.Errorf("subject missing booking details: %q", notification.Subject)
	}

	for _, field := range []string{"2026-03-02", "10:00 AM", "Dryer", "won't start", "123 Main St"} {
		if !strings.Contains(notification.Body, field) {
			t.Errorf("body missing %q:\n%s", field, notification.Body)
		}
	}
}

func TestBuildBookingNotificationNormalizesValidPhone(t *testing.T) {
	req := sampleRequest()
	req.Phone = "(212) 555-0123"

	notification := BuildBookingNotification(req)
	if !strings.Contains(notification.Body, "+12125550123") {
		t.Errorf("expected E.164 phone in body:\n%s", notification.Body)
	}
}

func TestBuildBookingNotificationKeepsUnparseablePhone(t *testing.T) {
	req := sampleRequest()
	req.Phone = "call after 5"

	notification := BuildBookingNotification(req)
	if !strings.Contains(notification.Body, "call after 5") {
		t.Errorf("expected raw phone preserved in body:\n%s", notification.Body)
	}
}

func TestSendBookingNotificationDispatchesAsync(t *testing.T) {
	sender := newFakeSender(false)
	logger := zerolog.Nop()

	SendBookingNotification(context.Background(), sender, "ops@fixfirst.example", BuildBookingNotification(sampleRequest()), &logger)

	select {
	case body := <-sender.received:
		if !strings.Contains(body, "Dryer") {
			t.Errorf("unexpected notification body: %s", body)
		}
	case <-time.After(time.Second):
		t.Fatal("notification send never started")
	}
}

func TestSendBookingNotificationSwallowsDeliveryFailure(t *testing.T) {
	sender := newFakeSender(true)
	logger := zerolog.Nop()

	// Must not panic or surface the provider error.
	SendBookingNotification(context.Background(), sender, "ops@fixfirst.example", BuildBookingNotification(sampleRequest()), &logger)

	select {
	case <-sender.received:
	case <-time.After(time.Second):
		t.Fatal("notification send never started")
	}
}

func TestSendBookingNotificationNilSenderIsNoop(t *testing.T) {
	logger := zerolog.Nop()
	SendBookingNotification(context.Background(), nil, "ops@fixfirst.example", BuildBookingNotification(sampleRequest()), &logger)
}

func TestSendBookingNotificationSurvivesHandlerContextCancel(t *testing.T) {
	sender := newFakeSender(false)
	logger := zerolog.Nop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // handler context is already gone when the goroutine runs

	SendBookingNotification(ctx, sender, "ops@fixfirst.example", BuildBookingNotification(sampleRequest()), &logger)

	select {
	case <-sender.received:
	case <-time.After(time.Second):
		t.Fatal("send should run on a detached context")
	}
}

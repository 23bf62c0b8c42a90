package notify

import (
	"context"
	"time"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

const (
	QueueBookingCreated       = "booking.created"
	QueueBookingConfirmed     = "booking.confirmed"
	QueueBookingStatusChanged = "booking.status_changed"
)

type BookingEvent struct {
	BookingID  uint      `json:"bookingId"`
	EventID    uint      `json:"eventId"`
	ClientID   uint      `json:"clientId"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	PaymentID  string    `json:"paymentId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewBookingEvent(b domain.Booking, now time.Time) BookingEvent {
	return BookingEvent{
		BookingID:  b.ID,
		EventID:    b.EventID,
		ClientID:   b.ClientID,
		Status:     b.Status,
		Notes:      b.Notes,
		OccurredAt: now.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, queue string, event BookingEvent) error
}

// NopPublisher drops every notification.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, BookingEvent) error {
	return nil
}

package domain

import "time"

const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)

type Booking struct {
	ID                 uint      `json:"bookingId"`
	ClientID           uint      `json:"clientId"`
	EventID            uint      `json:"eventId"`
	BookingDate        time.Time `json:"bookingDate"`
	Status             string    `json:"status"`
	ClientRequirements string    `json:"clientRequirements"`
	Notes              string    `json:"notes"`
	Client             *User     `json:"client,omitempty"`
	Event              *Event    `json:"event,omitempty"`
}

// IsOwnedBy reports whether the booking belongs to the given client.
func (b Booking) IsOwnedBy(clientID uint) bool {
	return b.ClientID == clientID
}

package domain

import "time"

const (
	PaymentCreated  = "CREATED"
	PaymentSuccess  = "SUCCESS"
	PaymentFailed   = "FAILED"
	PaymentRefunded = "REFUNDED"
)

type Payment struct {
	ID               uint      `json:"paymentId"`
	BookingID        *uint     `json:"bookingId"`
	OrderID          string    `json:"razorpayOrderId"`
	GatewayPaymentID *string   `json:"razorpayPaymentId"`
	Signature        string    `json:"-"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	Receipt          string    `json:"receipt"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// PaymentConfirmation carries everything needed to settle a verified payment into a booking.
type PaymentConfirmation struct {
	OrderID            string
	GatewayPaymentID   string
	Signature          string
	ClientUsername     string
	EventID            uint
	ClientRequirements string
}

type PaymentOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"razorpayKeyId"`
}

package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

type BookingRequest struct {
	EventID            uint   `json:"eventId"`
	ClientRequirements string `json:"clientRequirements"`
}

func (req *BookingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.ClientRequirements, validation.Length(0, 2000)),
	)
}

type BookingStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func (req *BookingStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required),
	)
}

type MessageRequest struct {
	EventID uint   `json:"eventId"`
	Content string `json:"content"`
}

func (req *MessageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Content, validation.Required, validation.RuneLength(1, 2000)),
	)
}

type PaymentOrderRequest struct {
	EventID            *uint  `json:"eventId"`
	ClientRequirements string `json:"clientRequirements"`
	Amount             int64  `json:"amount"`
}

func (req *PaymentOrderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.Required, validation.Min(int64(1))),
	)
}

type PaymentVerifyRequest struct {
	OrderID            string `json:"orderId"`
	PaymentID          string `json:"paymentId"`
	Signature          string `json:"signature"`
	EventID            uint   `json:"eventId"`
	ClientRequirements string `json:"clientRequirements"`
}

func (req *PaymentVerifyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.OrderID, validation.Required),
		validation.Field(&req.PaymentID, validation.Required),
		validation.Field(&req.Signature, validation.Required),
		validation.Field(&req.EventID, validation.Required),
	)
}

func (req *PaymentVerifyRequest) ToDomain() domain.PaymentConfirmation {
	return domain.PaymentConfirmation{
		OrderID:            req.OrderID,
		GatewayPaymentID:   req.PaymentID,
		Signature:          req.Signature,
		EventID:            req.EventID,
		ClientRequirements: req.ClientRequirements,
	}
}

package response

import (
	"github.com/vietanh2810/event-management-api/internal/domain"
)

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type ProfileResponse struct {
	UserID      uint   `json:"userId"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber"`
	FullName    string `json:"fullName"`
	Address     string `json:"address"`
}

func NewProfileResponse(u domain.User) ProfileResponse {
	return ProfileResponse{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		PhoneNumber: u.PhoneNumber,
		FullName:    u.FullName,
		Address:     u.Address,
	}
}

type ProfileUpdateResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    ProfileResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type EventResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Event   domain.Event `json:"event"`
}

type BookingResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Booking domain.Booking `json:"booking"`
}

type BookingStatusResponse struct {
	BookingID uint   `json:"bookingId"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

type ChatMessageResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    domain.Message `json:"data"`
}

type PaymentVerifyResponse struct {
	Message   string `json:"message"`
	BookingID uint   `json:"bookingId"`
	PaymentID uint   `json:"paymentId"`
	Status    string `json:"status"`
}

type PaymentResponse struct {
	PaymentID         uint    `json:"paymentId"`
	RazorpayOrderID   string  `json:"razorpayOrderId"`
	RazorpayPaymentID *string `json:"razorpayPaymentId"`
	Amount            int64   `json:"amount"`
	Currency          string  `json:"currency"`
	Status            string  `json:"status"`
	BookingID         *uint   `json:"bookingId"`
}

func NewPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.ID,
		RazorpayOrderID:   p.OrderID,
		RazorpayPaymentID: p.GatewayPaymentID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Status:            p.Status,
		BookingID:         p.BookingID,
	}
}

package v1

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/service"
)

func newPaymentRouter(svc *mockPaymentService) http.Handler {
	h := NewPaymentHandler(svc)

	r := newRouter(&client)
	r.POST("/api/payment/create-order", h.HandleCreateOrder)
	r.POST("/api/payment/verify", h.HandleVerifyPayment)
	r.GET("/api/payment/status/:paymentId", h.HandleGetPaymentStatus)
	r.GET("/api/payment/booking/:bookingId", h.HandleGetBookingPayment)
	return r
}

func verifyBody() map[string]interface{} {
	return map[string]interface{}{
		"orderId":            "order_1",
		"paymentId":          "pay_1",
		"signature":          "abc",
		"eventId":            4,
		"clientRequirements": "front row",
	}
}

func TestPaymentHandler_HandleCreateOrder(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(mockPaymentService)
		svc.On("CreateOrder", mock.Anything, client, int64(50000)).
			Return(domain.PaymentOrder{OrderID: "order_1", Amount: 50000, Currency: "INR", KeyID: "rzp_test_key"}, nil)

		w := doJSON(newPaymentRouter(svc), http.MethodPost, "/api/payment/create-order", map[string]interface{}{
			"amount": 50000,
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"orderId":"order_1","amount":50000,"currency":"INR","razorpayKeyId":"rzp_test_key"}`, w.Body.String())
	})

	t.Run("Zero amount", func(t *testing.T) {
		svc := new(mockPaymentService)
		w := doJSON(newPaymentRouter(svc), http.MethodPost, "/api/payment/create-order", map[string]interface{}{
			"amount": 0,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Gateway down", func(t *testing.T) {
		svc := new(mockPaymentService)
		svc.On("CreateOrder", mock.Anything, client, int64(100)).Return(domain.PaymentOrder{}, service.ErrGatewayFailure)

		w := doJSON(newPaymentRouter(svc), http.MethodPost, "/api/payment/create-order", map[string]interface{}{
			"amount": 100,
		})

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestPaymentHandler_HandleVerifyPayment(t *testing.T) {
	want := domain.PaymentConfirmation{
		OrderID:            "order_1",
		GatewayPaymentID:   "pay_1",
		Signature:          "abc",
		EventID:            4,
		ClientRequirements: "front row",
	}

	t.Run("Verified", func(t *testing.T) {
		svc := new(mockPaymentService)
		svc.On("VerifyAndCreateBooking", mock.Anything, client, want).
			Return(domain.Payment{ID: 8, Status: domain.PaymentSuccess}, domain.Booking{ID: 21}, nil)

		w := doJSON(newPaymentRouter(svc), http.MethodPost, "/api/payment/verify", verifyBody())

		require.Equal(t, http.StatusOK, w.Code)
		var got response.PaymentVerifyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(21), got.BookingID)
		assert.Equal(t, uint(8), got.PaymentID)
		assert.Equal(t, domain.PaymentSuccess, got.Status)
	})

	t.Run("Bad signature", func(t *testing.T) {
		svc := new(mockPaymentService)
		svc.On("VerifyAndCreateBooking", mock.Anything, client, want).
			Return(domain.Payment{}, domain.Booking{}, service.ErrInvalidSignature)

		w := doJSON(newPaymentRouter(svc), http.MethodPost, "/api/payment/verify", verifyBody())

		require.Equal(t, http.StatusBadRequest, w.Code)
		var got response.Err
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, domain.PaymentFailed, got.Status)
		assert.Equal(t, service.ErrInvalidSignature.Error(), got.Message)
	})

	t.Run("Missing signature", func(t *testing.T) {
		svc := new(mockPaymentService)
		body := verifyBody()
		delete(body, "signature")

		w := doJSON(newPaymentRouter(svc), http.MethodPost, "/api/payment/verify", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var got response.Err
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, domain.PaymentFailed, got.Status)
		svc.AssertNotCalled(t, "VerifyAndCreateBooking", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Replay", func(t *testing.T) {
		svc := new(mockPaymentService)
		svc.On("VerifyAndCreateBooking", mock.Anything, client, want).
			Return(domain.Payment{}, domain.Booking{}, service.ErrPaymentNotPending)

		w := doJSON(newPaymentRouter(svc), http.MethodPost, "/api/payment/verify", verifyBody())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentHandler_Lookups(t *testing.T) {
	gatewayID := "pay_1"
	bookingID := uint(21)
	paid := domain.Payment{
		ID:               8,
		OrderID:          "order_1",
		GatewayPaymentID: &gatewayID,
		Amount:           50000,
		Currency:         "INR",
		Status:           domain.PaymentSuccess,
		BookingID:        &bookingID,
	}

	t.Run("By gateway id", func(t *testing.T) {
		svc := new(mockPaymentService)
		svc.On("GetPaymentStatus", mock.Anything, "pay_1").Return(paid, nil)

		w := doJSON(newPaymentRouter(svc), http.MethodGet, "/api/payment/status/pay_1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"paymentId": 8,
			"razorpayOrderId": "order_1",
			"razorpayPaymentId": "pay_1",
			"amount": 50000,
			"currency": "INR",
			"status": "SUCCESS",
			"bookingId": 21
		}`, w.Body.String())
	})

	t.Run("By booking missing", func(t *testing.T) {
		svc := new(mockPaymentService)
		svc.On("GetPaymentByBooking", mock.Anything, uint(22)).Return(domain.Payment{}, service.ErrPaymentNotFound)

		w := doJSON(newPaymentRouter(svc), http.MethodGet, "/api/payment/booking/22", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

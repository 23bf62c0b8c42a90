package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/notify"
	"github.com/vietanh2810/event-management-api/internal/payment"
	"github.com/vietanh2810/event-management-api/internal/repository"
)

var (
	ErrPaymentNotFound   = repository.ErrPaymentNotFound
	ErrPaymentNotPending = repository.ErrPaymentNotPending
	ErrPaymentDuplicate  = repository.ErrPaymentDuplicate
	ErrInvalidSignature  = errors.New("invalid payment signature")
	ErrGatewayFailure    = errors.New("payment gateway failure")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
)

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID string) (domain.Payment, error)
	FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (domain.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uint) (domain.Payment, error)
	MarkFailed(ctx context.Context, orderID string) (bool, error)
	ConfirmWithBooking(ctx context.Context, c domain.PaymentConfirmation) (domain.Payment, domain.Booking, error)
}

type PaymentService struct {
	repo      PaymentRepository
	gateway   payment.Gateway
	keySecret string
	currency  string
	publisher notify.Publisher
	now       func() time.Time
}

func NewPaymentService(repo PaymentRepository, gateway payment.Gateway, keySecret, currency string, publisher notify.Publisher) *PaymentService {
	return &PaymentService{
		repo:      repo,
		gateway:   gateway,
		keySecret: keySecret,
		currency:  currency,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateOrder opens an order with the gateway and records a CREATED payment for it.
// Amount is in minor currency units.
func (s *PaymentService) CreateOrder(ctx context.Context, principal domain.Principal, amount int64) (domain.PaymentOrder, error) {
	if amount <= 0 {
		return domain.PaymentOrder{}, ErrInvalidAmount
	}

	receipt := "txn_" + strconv.FormatInt(s.now().UnixMilli(), 10)

	order, err := s.gateway.CreateOrder(ctx, payment.OrderRequest{
		Amount:   amount,
		Currency: s.currency,
		Receipt:  receipt,
	})
	if err != nil {
		zap.L().Error("failed to create gateway order",
			zap.String("username", principal.Username),
			zap.Error(err))

		return domain.PaymentOrder{}, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	created, err := s.repo.Create(ctx, domain.Payment{
		OrderID:  order.ID,
		Amount:   amount,
		Currency: s.currency,
		Status:   domain.PaymentCreated,
		Receipt:  receipt,
	})
	if err != nil {
		return domain.PaymentOrder{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return domain.PaymentOrder{
		OrderID:  created.OrderID,
		Amount:   created.Amount,
		Currency: created.Currency,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

// VerifyAndCreateBooking checks the gateway signature and, when valid, settles
// the payment and creates a CONFIRMED booking atomically. Any failure leaves a
// still pending payment FAILED.
func (s *PaymentService) VerifyAndCreateBooking(ctx context.Context, principal domain.Principal, c domain.PaymentConfirmation) (domain.Payment, domain.Booking, error) {
	c.ClientUsername = principal.Username

	if !payment.VerifySignature(s.keySecret, c.OrderID, c.GatewayPaymentID, c.Signature) {
		s.markFailed(ctx, c.OrderID)

		return domain.Payment{}, domain.Booking{}, ErrInvalidSignature
	}

	confirmed, booking, err := s.repo.ConfirmWithBooking(ctx, c)
	if err != nil {
		s.markFailed(ctx, c.OrderID)

		return domain.Payment{}, domain.Booking{}, fmt.Errorf("s.repo.ConfirmWithBooking -> %w", err)
	}

	event := notify.NewBookingEvent(booking, s.now())
	event.PaymentID = c.GatewayPaymentID
	if err = s.publisher.Publish(ctx, notify.QueueBookingConfirmed, event); err != nil {
		zap.L().Warn("failed to publish booking notification",
			zap.String("queue", notify.QueueBookingConfirmed),
			zap.Uint("booking_id", booking.ID),
			zap.Error(err))
	}

	return confirmed, booking, nil
}

func (s *PaymentService) GetPaymentStatus(ctx context.Context, gatewayPaymentID string) (domain.Payment, error) {
	found, err := s.repo.FindByGatewayPaymentID(ctx, gatewayPaymentID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.FindByGatewayPaymentID -> %w", err)
	}

	return found, nil
}

func (s *PaymentService) GetPaymentByBooking(ctx context.Context, bookingID uint) (domain.Payment, error) {
	found, err := s.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.FindByBookingID -> %w", err)
	}

	return found, nil
}

func (s *PaymentService) markFailed(ctx context.Context, orderID string) {
	if _, err := s.repo.MarkFailed(ctx, orderID); err != nil {
		zap.L().Error("failed to mark payment as failed",
			zap.String("order_id", orderID),
			zap.Error(err))
	}
}

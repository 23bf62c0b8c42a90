package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/repository/dao"
)

var (
	ErrPaymentNotFound   = dao.ErrPaymentNotFound
	ErrPaymentNotPending = dao.ErrPaymentNotPending
	ErrPaymentDuplicate  = dao.ErrPaymentDuplicate
)

type PaymentDAO interface {
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	FindByOrderID(ctx context.Context, orderID string) (dao.Payment, error)
	FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (dao.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uint) (dao.Payment, error)
	MarkFailed(ctx context.Context, orderID string) (bool, error)
	ConfirmWithBooking(ctx context.Context, c dao.PaymentConfirmation) (dao.Payment, dao.Booking, error)
}

type PaymentRepository struct {
	dao PaymentDAO
	now func() time.Time
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
		now: time.Now,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, dao.Payment{
		OrderID:  payment.OrderID,
		Amount:   payment.Amount,
		Currency: payment.Currency,
		Status:   payment.Status,
		Receipt:  payment.Receipt,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return paymentDaoToDomain(created), nil
}

func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (domain.Payment, error) {
	found, err := r.dao.FindByOrderID(ctx, orderID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByOrderID -> %w", err)
	}

	return paymentDaoToDomain(found), nil
}

func (r *PaymentRepository) FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (domain.Payment, error) {
	found, err := r.dao.FindByGatewayPaymentID(ctx, gatewayPaymentID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByGatewayPaymentID -> %w", err)
	}

	return paymentDaoToDomain(found), nil
}

func (r *PaymentRepository) FindByBookingID(ctx context.Context, bookingID uint) (domain.Payment, error) {
	found, err := r.dao.FindByBookingID(ctx, bookingID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByBookingID -> %w", err)
	}

	return paymentDaoToDomain(found), nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, orderID string) (bool, error) {
	failed, err := r.dao.MarkFailed(ctx, orderID)
	if err != nil {
		return false, fmt.Errorf("r.dao.MarkFailed -> %w", err)
	}

	return failed, nil
}

func (r *PaymentRepository) ConfirmWithBooking(ctx context.Context, c domain.PaymentConfirmation) (domain.Payment, domain.Booking, error) {
	payment, booking, err := r.dao.ConfirmWithBooking(ctx, dao.PaymentConfirmation{
		OrderID:            c.OrderID,
		GatewayPaymentID:   c.GatewayPaymentID,
		Signature:          c.Signature,
		ClientUsername:     c.ClientUsername,
		EventID:            c.EventID,
		ClientRequirements: c.ClientRequirements,
		BookingDate:        r.now(),
	})
	if err != nil {
		return domain.Payment{}, domain.Booking{}, fmt.Errorf("r.dao.ConfirmWithBooking -> %w", err)
	}

	return paymentDaoToDomain(payment), bookingDaoToDomain(booking), nil
}

func paymentDaoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:               p.ID,
		BookingID:        p.BookingID,
		OrderID:          p.OrderID,
		GatewayPaymentID: p.GatewayPaymentID,
		Signature:        p.Signature,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Status:           p.Status,
		Receipt:          p.Receipt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

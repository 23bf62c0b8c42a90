package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentNotPending = errors.New("payment is not awaiting verification")
	ErrPaymentDuplicate  = errors.New("payment already recorded")
)

type Payment struct {
	ID               uint     `gorm:"primaryKey"`
	BookingID        *uint    `gorm:"uniqueIndex"`
	Booking          *Booking `gorm:"foreignKey:BookingID"`
	OrderID          string   `gorm:"unique;not null"`
	GatewayPaymentID *string  `gorm:"unique"`
	Signature        string
	Amount           int64  `gorm:"not null"` // minor currency units
	Currency         string `gorm:"not null"`
	Status           string `gorm:"not null;index"` // "CREATED", "SUCCESS", "FAILED" or "REFUNDED"
	Receipt          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PaymentConfirmation is the input of ConfirmWithBooking.
type PaymentConfirmation struct {
	OrderID            string
	GatewayPaymentID   string
	Signature          string
	ClientUsername     string
	EventID            uint
	ClientRequirements string
	BookingDate        time.Time
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&payment)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "") {
			return Payment{}, ErrPaymentDuplicate
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (Payment, error) {
	return d.findOne(ctx, "gateway_payment_id = ?", gatewayPaymentID)
}

func (d *PaymentDAO) FindByBookingID(ctx context.Context, bookingID uint) (Payment, error) {
	return d.findOne(ctx, "booking_id = ?", bookingID)
}

func (d *PaymentDAO) FindByOrderID(ctx context.Context, orderID string) (Payment, error) {
	return d.findOne(ctx, "order_id = ?", orderID)
}

func (d *PaymentDAO) findOne(ctx context.Context, query string, args ...interface{}) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).Where(query, args...).First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

// MarkFailed moves a payment from CREATED to FAILED. Payments in any other
// state are left untouched.
func (d *PaymentDAO) MarkFailed(ctx context.Context, orderID string) (bool, error) {
	result := d.db.WithContext(ctx).
		Model(&Payment{}).
		Where("order_id = ? AND status = ?", orderID, "CREATED").
		Update("status", "FAILED")
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ConfirmWithBooking settles a verified payment: the payment becomes SUCCESS,
// a CONFIRMED booking is created for the client, and the two are linked. All
// of it commits together or not at all.
func (d *PaymentDAO) ConfirmWithBooking(ctx context.Context, c PaymentConfirmation) (Payment, Booking, error) {
	var (
		payment Payment
		booking Booking
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", c.OrderID).
			First(&payment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		if payment.Status != "CREATED" {
			return ErrPaymentNotPending
		}

		gatewayPaymentID := c.GatewayPaymentID
		payment.GatewayPaymentID = &gatewayPaymentID
		payment.Signature = c.Signature
		payment.Status = "SUCCESS"
		if err := tx.Omit(clause.Associations).Save(&payment).Error; err != nil {
			if isUniqueViolation(err, "") {
				return ErrPaymentDuplicate
			}
			return err
		}

		var client User
		if err := tx.First(&client, "username = ?", c.ClientUsername).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Select("id").First(&Event{}, c.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		booking = Booking{
			ClientID:           client.ID,
			EventID:            c.EventID,
			BookingDate:        c.BookingDate,
			Status:             "CONFIRMED",
			ClientRequirements: c.ClientRequirements,
			Notes:              fmt.Sprintf("Payment ID: %s", c.GatewayPaymentID),
		}
		if err := tx.Omit(clause.Associations).Create(&booking).Error; err != nil {
			return err
		}

		payment.BookingID = &booking.ID

		return tx.Model(&Payment{}).Where("id = ?", payment.ID).Update("booking_id", booking.ID).Error
	})
	if err != nil {
		return Payment{}, Booking{}, err
	}

	return payment, booking, nil
}

package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

type Booking struct {
	ID                 uint      `gorm:"primaryKey"`
	ClientID           uint      `gorm:"not null;index"`
	Client             User      `gorm:"foreignKey:ClientID"`
	EventID            uint      `gorm:"not null;index"`
	Event              Event     `gorm:"foreignKey:EventID"`
	BookingDate        time.Time `gorm:"not null"`
	Status             string    `gorm:"not null"` // "PENDING", "CONFIRMED" or "CANCELLED"
	ClientRequirements string
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

func (d *BookingDAO) withDetails(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).Preload("Client").Preload("Event")
}

func (d *BookingDAO) Insert(ctx context.Context, booking Booking) (Booking, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&booking)
	if result.Error != nil {
		return Booking{}, result.Error
	}

	return d.FindByID(ctx, booking.ID)
}

func (d *BookingDAO) FindByID(ctx context.Context, id uint) (Booking, error) {
	var booking Booking

	result := d.withDetails(ctx).First(&booking, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Booking{}, ErrBookingNotFound
		}

		return Booking{}, result.Error
	}

	return booking, nil
}

func (d *BookingDAO) FindByClientID(ctx context.Context, clientID uint) ([]Booking, error) {
	var bookings []Booking

	result := d.withDetails(ctx).Where("client_id = ?", clientID).Order("booking_date DESC, id DESC").Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

func (d *BookingDAO) FindAll(ctx context.Context) ([]Booking, error) {
	var bookings []Booking

	result := d.withDetails(ctx).Order("booking_date DESC, id DESC").Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

func (d *BookingDAO) UpdateStatus(ctx context.Context, id uint, status string, notes *string) (Booking, error) {
	updates := map[string]interface{}{"status": status}
	if notes != nil {
		updates["notes"] = *notes
	}

	result := d.db.WithContext(ctx).Model(&Booking{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return Booking{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Booking{}, ErrBookingNotFound
	}

	return d.FindByID(ctx, id)
}

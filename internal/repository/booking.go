package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/repository/dao"
)

var (
	ErrBookingNotFound = dao.ErrBookingNotFound
)

type BookingDAO interface {
	Insert(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	FindByID(ctx context.Context, id uint) (dao.Booking, error)
	FindByClientID(ctx context.Context, clientID uint) ([]dao.Booking, error)
	FindAll(ctx context.Context) ([]dao.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status string, notes *string) (dao.Booking, error)
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	created, err := r.dao.Insert(ctx, dao.Booking{
		ClientID:           booking.ClientID,
		EventID:            booking.EventID,
		BookingDate:        booking.BookingDate,
		Status:             booking.Status,
		ClientRequirements: booking.ClientRequirements,
		Notes:              booking.Notes,
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return bookingDaoToDomain(created), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uint) (domain.Booking, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return bookingDaoToDomain(found), nil
}

func (r *BookingRepository) FindByClientID(ctx context.Context, clientID uint) ([]domain.Booking, error) {
	found, err := r.dao.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByClientID -> %w", err)
	}

	return bookingsDaoToDomain(found), nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return bookingsDaoToDomain(found), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uint, status string, notes *string) (domain.Booking, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, status, notes)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return bookingDaoToDomain(updated), nil
}

func bookingsDaoToDomain(bookings []dao.Booking) []domain.Booking {
	result := make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		result[i] = bookingDaoToDomain(b)
	}
	return result
}

func bookingDaoToDomain(b dao.Booking) domain.Booking {
	booking := domain.Booking{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		EventID:            b.EventID,
		BookingDate:        b.BookingDate,
		Status:             b.Status,
		ClientRequirements: b.ClientRequirements,
		Notes:              b.Notes,
	}

	if b.Client.ID != 0 {
		client := userDaoToDomain(b.Client)
		booking.Client = &client
	}
	if b.Event.ID != 0 {
		event := eventDaoToDomain(b.Event)
		booking.Event = &event
	}

	return booking
}

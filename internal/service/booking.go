package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/notify"
	"github.com/vietanh2810/event-management-api/internal/repository"
)

var (
	ErrBookingNotFound     = repository.ErrBookingNotFound
	ErrBookingAccessDenied = errors.New("booking belongs to another client")
	ErrEmptyBookingStatus  = errors.New("booking status is required")
)

type BookingRepository interface {
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	FindByID(ctx context.Context, id uint) (domain.Booking, error)
	FindByClientID(ctx context.Context, clientID uint) ([]domain.Booking, error)
	FindAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status string, notes *string) (domain.Booking, error)
}

type BookingService struct {
	repo      BookingRepository
	eventRepo EventRepository
	userRepo  UserRepository
	publisher notify.Publisher
	now       func() time.Time
}

func NewBookingService(repo BookingRepository, eventRepo EventRepository, userRepo UserRepository, publisher notify.Publisher) *BookingService {
	return &BookingService{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, principal domain.Principal, eventID uint, requirements string) (domain.Booking, error) {
	client, err := s.userRepo.FindByUsername(ctx, principal.Username)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.userRepo.FindByUsername -> %w", err)
	}

	if _, err = s.eventRepo.FindByID(ctx, eventID); err != nil {
		return domain.Booking{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Booking{
		ClientID:           client.ID,
		EventID:            eventID,
		BookingDate:        s.now(),
		Status:             domain.BookingPending,
		ClientRequirements: requirements,
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.publish(ctx, notify.QueueBookingCreated, notify.NewBookingEvent(created, s.now()))

	return created, nil
}

// GetBookingForClient returns the booking only if it belongs to the calling client.
func (s *BookingService) GetBookingForClient(ctx context.Context, principal domain.Principal, id uint) (domain.Booking, error) {
	client, err := s.userRepo.FindByUsername(ctx, principal.Username)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.userRepo.FindByUsername -> %w", err)
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !booking.IsOwnedBy(client.ID) {
		return domain.Booking{}, ErrBookingAccessDenied
	}

	return booking, nil
}

func (s *BookingService) GetClientBookings(ctx context.Context, principal domain.Principal) ([]domain.Booking, error) {
	client, err := s.userRepo.FindByUsername(ctx, principal.Username)
	if err != nil {
		return nil, fmt.Errorf("s.userRepo.FindByUsername -> %w", err)
	}

	bookings, err := s.repo.FindByClientID(ctx, client.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByClientID -> %w", err)
	}

	return bookings, nil
}

func (s *BookingService) GetAllBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return bookings, nil
}

func (s *BookingService) GetBookingStatus(ctx context.Context, id uint) (domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return booking, nil
}

// UpdateBookingStatus sets a new status. Notes are overwritten only when provided.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id uint, status string, notes *string) (domain.Booking, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return domain.Booking{}, ErrEmptyBookingStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, notes)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	s.publish(ctx, notify.QueueBookingStatusChanged, notify.NewBookingEvent(updated, s.now()))

	return updated, nil
}

func (s *BookingService) publish(ctx context.Context, queue string, event notify.BookingEvent) {
	if err := s.publisher.Publish(ctx, queue, event); err != nil {
		zap.L().Warn("failed to publish booking notification",
			zap.String("queue", queue),
			zap.Uint("booking_id", event.BookingID),
			zap.Error(err))
	}
}

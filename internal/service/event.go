package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/repository"
)

var (
	ErrEventNotFound    = repository.ErrEventNotFound
	ErrEventHasBookings = repository.ErrEventHasBookings
	ErrNotStaff         = errors.New("user is not a staff member")
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindByTitle(ctx context.Context, title string) ([]domain.Event, error)
	FindByAssignedStaff(ctx context.Context, staffID uint) ([]domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	AssignStaff(ctx context.Context, eventID, staffID uint) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
}

type EventService struct {
	repo     EventRepository
	userRepo UserRepository
}

func NewEventService(repo EventRepository, userRepo UserRepository) *EventService {
	return &EventService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, principal domain.Principal, event domain.Event) (domain.Event, error) {
	planner, err := s.userRepo.FindByUsername(ctx, principal.Username)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.userRepo.FindByUsername -> %w", err)
	}

	event.ID = 0
	event.CreatedByID = &planner.ID
	event.AssignedStaffID = nil
	event.AssignedStaff = nil
	event.Allocations = nil
	if event.Status == "" {
		event.Status = domain.EventScheduled
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) SearchEventsByTitle(ctx context.Context, title string) ([]domain.Event, error) {
	events, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTitle -> %w", err)
	}

	return events, nil
}

// UpdateEvent overwrites the editable fields of the event identified by id.
// An empty status keeps the stored one. Allocations change only through
// ResourceService.AllocateResource.
func (s *EventService) UpdateEvent(ctx context.Context, id uint, event domain.Event) (domain.Event, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	event.ID = existing.ID
	if event.Status == "" {
		event.Status = existing.Status
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *EventService) AssignStaff(ctx context.Context, eventID, staffID uint) (domain.Event, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	staff, err := s.userRepo.FindByID(ctx, staffID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}
	if staff.Role != domain.RoleStaff {
		return domain.Event{}, ErrNotStaff
	}

	event, err := s.repo.AssignStaff(ctx, eventID, staff.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.AssignStaff -> %w", err)
	}

	return event, nil
}

func (s *EventService) GetAllStaff(ctx context.Context) ([]domain.User, error) {
	staff, err := s.userRepo.FindByRole(ctx, domain.RoleStaff)
	if err != nil {
		return nil, fmt.Errorf("s.userRepo.FindByRole -> %w", err)
	}

	return staff, nil
}

// GetEventsForStaff returns the events assigned to the calling staff member.
func (s *EventService) GetEventsForStaff(ctx context.Context, principal domain.Principal) ([]domain.Event, error) {
	staff, err := s.userRepo.FindByUsername(ctx, principal.Username)
	if err != nil {
		return nil, fmt.Errorf("s.userRepo.FindByUsername -> %w", err)
	}

	events, err := s.repo.FindByAssignedStaff(ctx, staff.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByAssignedStaff -> %w", err)
	}

	return events, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/repository/dao"
)

var (
	ErrEventNotFound    = dao.ErrEventNotFound
	ErrEventHasBookings = dao.ErrEventHasBookings
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindByTitle(ctx context.Context, title string) ([]dao.Event, error)
	FindByAssignedStaff(ctx context.Context, staffID uint) ([]dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	AssignStaff(ctx context.Context, eventID, staffID uint) (dao.Event, error)
	CompleteIfScheduled(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventDaoToDomain(created), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	events, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return eventsDaoToDomain(events), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	event, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventDaoToDomain(event), nil
}

func (r *EventRepository) FindByTitle(ctx context.Context, title string) ([]domain.Event, error) {
	events, err := r.dao.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTitle -> %w", err)
	}

	return eventsDaoToDomain(events), nil
}

func (r *EventRepository) FindByAssignedStaff(ctx context.Context, staffID uint) ([]domain.Event, error) {
	events, err := r.dao.FindByAssignedStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByAssignedStaff -> %w", err)
	}

	return eventsDaoToDomain(events), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return eventDaoToDomain(updated), nil
}

func (r *EventRepository) AssignStaff(ctx context.Context, eventID, staffID uint) (domain.Event, error) {
	updated, err := r.dao.AssignStaff(ctx, eventID, staffID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.AssignStaff -> %w", err)
	}

	return eventDaoToDomain(updated), nil
}

func (r *EventRepository) CompleteIfScheduled(ctx context.Context, id uint) (bool, error) {
	updated, err := r.dao.CompleteIfScheduled(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.CompleteIfScheduled -> %w", err)
	}

	return updated, nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		DateTime:        e.DateTime,
		Location:        e.Location,
		Status:          e.Status,
		Amount:          e.Amount,
		CreatedByID:     e.CreatedByID,
		AssignedStaffID: e.AssignedStaffID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func eventsDaoToDomain(events []dao.Event) []domain.Event {
	result := make([]domain.Event, len(events))
	for i, e := range events {
		result[i] = eventDaoToDomain(e)
	}
	return result
}

func eventDaoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		DateTime:        e.DateTime,
		Location:        e.Location,
		Status:          e.Status,
		Amount:          e.Amount,
		CreatedByID:     e.CreatedByID,
		AssignedStaffID: e.AssignedStaffID,
		Allocations:     allocationsDaoToDomain(e.Allocations),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}

	if e.AssignedStaff != nil && e.AssignedStaff.ID != 0 {
		staff := userDaoToDomain(*e.AssignedStaff)
		event.AssignedStaff = &staff
	}

	return event
}

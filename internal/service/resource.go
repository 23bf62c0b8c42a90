package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/repository"
)

var (
	ErrResourceNotFound    = repository.ErrResourceNotFound
	ErrResourceUnavailable = repository.ErrResourceUnavailable
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
)

type ResourceRepository interface {
	Create(ctx context.Context, resource domain.Resource) (domain.Resource, error)
	FindAll(ctx context.Context) ([]domain.Resource, error)
	FindByID(ctx context.Context, id uint) (domain.Resource, error)
	Allocate(ctx context.Context, allocation domain.Allocation) (domain.Allocation, error)
}

type ResourceService struct {
	repo ResourceRepository
}

func NewResourceService(repo ResourceRepository) *ResourceService {
	return &ResourceService{
		repo: repo,
	}
}

func (s *ResourceService) AddResource(ctx context.Context, resource domain.Resource) (domain.Resource, error) {
	resource.ID = 0

	created, err := s.repo.Create(ctx, resource)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ResourceService) GetResources(ctx context.Context) ([]domain.Resource, error) {
	resources, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return resources, nil
}

// AllocateResource reserves an available resource for an event. The resource
// is marked unavailable and the allocation recorded in the same transaction.
func (s *ResourceService) AllocateResource(ctx context.Context, eventID, resourceID uint, quantity int) (domain.Allocation, error) {
	if quantity < 1 {
		return domain.Allocation{}, ErrInvalidQuantity
	}

	allocation, err := s.repo.Allocate(ctx, domain.Allocation{
		EventID:    eventID,
		ResourceID: resourceID,
		Quantity:   quantity,
	})
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("s.repo.Allocate -> %w", err)
	}

	return allocation, nil
}

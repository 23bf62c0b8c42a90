package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/repository/dao"
)

var (
	ErrResourceNotFound    = dao.ErrResourceNotFound
	ErrResourceUnavailable = dao.ErrResourceUnavailable
)

type ResourceDAO interface {
	Insert(ctx context.Context, resource dao.Resource) (dao.Resource, error)
	FindAll(ctx context.Context) ([]dao.Resource, error)
	FindByID(ctx context.Context, id uint) (dao.Resource, error)
	Allocate(ctx context.Context, allocation dao.Allocation) (dao.Allocation, error)
}

type ResourceRepository struct {
	dao ResourceDAO
}

func NewResourceRepository(dao ResourceDAO) *ResourceRepository {
	return &ResourceRepository{
		dao: dao,
	}
}

func (r *ResourceRepository) Create(ctx context.Context, resource domain.Resource) (domain.Resource, error) {
	created, err := r.dao.Insert(ctx, dao.Resource{
		Name:         resource.Name,
		Type:         resource.Type,
		Availability: resource.Availability,
	})
	if err != nil {
		return domain.Resource{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return resourceDaoToDomain(created), nil
}

func (r *ResourceRepository) FindAll(ctx context.Context) ([]domain.Resource, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	resources := make([]domain.Resource, len(found))
	for i, res := range found {
		resources[i] = resourceDaoToDomain(res)
	}

	return resources, nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uint) (domain.Resource, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return resourceDaoToDomain(found), nil
}

func (r *ResourceRepository) Allocate(ctx context.Context, allocation domain.Allocation) (domain.Allocation, error) {
	created, err := r.dao.Allocate(ctx, dao.Allocation{
		EventID:    allocation.EventID,
		ResourceID: allocation.ResourceID,
		Quantity:   allocation.Quantity,
	})
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("r.dao.Allocate -> %w", err)
	}

	return allocationDaoToDomain(created), nil
}

func resourceDaoToDomain(r dao.Resource) domain.Resource {
	return domain.Resource{
		ID:           r.ID,
		Name:         r.Name,
		Type:         r.Type,
		Availability: r.Availability,
	}
}

func allocationDaoToDomain(a dao.Allocation) domain.Allocation {
	return domain.Allocation{
		ID:         a.ID,
		EventID:    a.EventID,
		ResourceID: a.ResourceID,
		Quantity:   a.Quantity,
	}
}

func allocationsDaoToDomain(allocations []dao.Allocation) []domain.Allocation {
	result := make([]domain.Allocation, len(allocations))
	for i, a := range allocations {
		result[i] = allocationDaoToDomain(a)
	}
	return result
}

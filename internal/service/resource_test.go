package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

func TestResourceService_AllocateResource(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mockResourceRepository)
		repo.On("Allocate", mock.Anything, domain.Allocation{EventID: 1, ResourceID: 2, Quantity: 3}).
			Return(domain.Allocation{ID: 10, EventID: 1, ResourceID: 2, Quantity: 3}, nil)

		allocation, err := NewResourceService(repo).AllocateResource(ctx, 1, 2, 3)

		require.NoError(t, err)
		assert.Equal(t, uint(10), allocation.ID)
	})

	t.Run("Unavailable resource", func(t *testing.T) {
		repo := new(mockResourceRepository)
		repo.On("Allocate", mock.Anything, mock.Anything).Return(domain.Allocation{}, ErrResourceUnavailable)

		_, err := NewResourceService(repo).AllocateResource(ctx, 1, 2, 1)

		assert.ErrorIs(t, err, ErrResourceUnavailable)
	})

	t.Run("Zero quantity", func(t *testing.T) {
		repo := new(mockResourceRepository)

		_, err := NewResourceService(repo).AllocateResource(ctx, 1, 2, 0)

		assert.ErrorIs(t, err, ErrInvalidQuantity)
		repo.AssertNotCalled(t, "Allocate", mock.Anything, mock.Anything)
	})
}

func TestResourceService_AddResource(t *testing.T) {
	repo := new(mockResourceRepository)
	repo.On("Create", mock.Anything, domain.Resource{Name: "Projector", Type: "AV", Availability: true}).
		Return(domain.Resource{ID: 1, Name: "Projector", Type: "AV", Availability: true}, nil)

	created, err := NewResourceService(repo).AddResource(context.Background(), domain.Resource{ID: 7, Name: "Projector", Type: "AV", Availability: true})

	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
}

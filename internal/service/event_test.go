package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	users := new(mockUserRepository)
	users.On("FindByUsername", mock.Anything, "planner").Return(domain.User{ID: 9, Role: domain.RolePlanner}, nil)

	events := new(mockEventRepository)
	events.On("Create", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.ID == 0 && e.Status == domain.EventScheduled && e.CreatedByID != nil && *e.CreatedByID == 9
	})).Return(domain.Event{ID: 1, Status: domain.EventScheduled}, nil)

	svc := NewEventService(events, users)
	created, err := svc.CreateEvent(ctx, domain.Principal{Username: "planner"}, domain.Event{
		ID:       42,
		Title:    "Gala",
		DateTime: time.Now().Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	events.AssertExpectations(t)
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Keeps id and stored status when omitted", func(t *testing.T) {
		events := new(mockEventRepository)
		events.On("FindByID", mock.Anything, uint(4)).Return(domain.Event{ID: 4, Status: domain.EventCompleted}, nil)
		events.On("Update", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.ID == 4 && e.Status == domain.EventCompleted && e.Title == "Renamed"
		})).Return(domain.Event{ID: 4, Title: "Renamed"}, nil)

		updated, err := NewEventService(events, new(mockUserRepository)).UpdateEvent(ctx, 4, domain.Event{ID: 99, Title: "Renamed"})

		require.NoError(t, err)
		assert.Equal(t, uint(4), updated.ID)
		events.AssertExpectations(t)
	})

	t.Run("Missing event", func(t *testing.T) {
		events := new(mockEventRepository)
		events.On("FindByID", mock.Anything, uint(4)).Return(domain.Event{}, ErrEventNotFound)

		_, err := NewEventService(events, new(mockUserRepository)).UpdateEvent(ctx, 4, domain.Event{})

		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestEventService_AssignStaff(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		eventErr error
		user     domain.User
		userErr  error
		wantErr  error
	}{
		{name: "Success", user: domain.User{ID: 2, Role: domain.RoleStaff}},
		{name: "Event missing", eventErr: ErrEventNotFound, wantErr: ErrEventNotFound},
		{name: "User missing", userErr: ErrUserNotFound, wantErr: ErrUserNotFound},
		{name: "User is not staff", user: domain.User{ID: 2, Role: domain.RoleClient}, wantErr: ErrNotStaff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := new(mockEventRepository)
			users := new(mockUserRepository)

			events.On("FindByID", mock.Anything, uint(1)).Return(domain.Event{ID: 1}, tt.eventErr)
			users.On("FindByID", mock.Anything, uint(2)).Return(tt.user, tt.userErr)
			events.On("AssignStaff", mock.Anything, uint(1), uint(2)).Return(domain.Event{ID: 1, AssignedStaffID: &tt.user.ID}, nil)

			event, err := NewEventService(events, users).AssignStaff(ctx, 1, 2)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				events.AssertNotCalled(t, "AssignStaff", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, event.AssignedStaffID)
			assert.Equal(t, uint(2), *event.AssignedStaffID)
		})
	}
}

func TestEventService_GetEventsForStaff(t *testing.T) {
	users := new(mockUserRepository)
	users.On("FindByUsername", mock.Anything, "sam").Return(domain.User{ID: 6, Role: domain.RoleStaff}, nil)

	events := new(mockEventRepository)
	events.On("FindByAssignedStaff", mock.Anything, uint(6)).Return([]domain.Event{{ID: 1}, {ID: 2}}, nil)

	got, err := NewEventService(events, users).GetEventsForStaff(context.Background(), domain.Principal{Username: "sam"})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestEventService_DeleteEvent(t *testing.T) {
	events := new(mockEventRepository)
	events.On("Delete", mock.Anything, uint(3)).Return(ErrEventHasBookings)

	err := NewEventService(events, new(mockUserRepository)).DeleteEvent(context.Background(), 3)

	assert.ErrorIs(t, err, ErrEventHasBookings)
}

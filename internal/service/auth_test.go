package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Hashes password and creates user", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByUsername", mock.Anything, "alice").Return(domain.User{}, ErrUserNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Username == "alice" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("passw0rd!")) == nil
		})).Return(domain.User{ID: 1, Username: "alice", Role: domain.RoleClient}, nil)

		svc := NewAuthService(repo)
		user, err := svc.Register(ctx, domain.User{Username: "alice", Password: "passw0rd!", Email: "a@x.io", Role: domain.RoleClient})

		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Rejects taken username", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByUsername", mock.Anything, "alice").Return(domain.User{ID: 1}, nil)

		svc := NewAuthService(repo)
		_, err := svc.Register(ctx, domain.User{Username: "alice", Password: "passw0rd!", Role: domain.RoleClient})

		assert.ErrorIs(t, err, ErrUsernameExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Maps unique violation from storage", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByUsername", mock.Anything, "alice").Return(domain.User{}, ErrUserNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(domain.User{}, ErrUsernameExists)

		svc := NewAuthService(repo)
		_, err := svc.Register(ctx, domain.User{Username: "alice", Password: "passw0rd!", Role: domain.RolePlanner})

		assert.ErrorIs(t, err, ErrUsernameExists)
	})

	t.Run("Rejects unknown role", func(t *testing.T) {
		svc := NewAuthService(new(mockUserRepository))
		_, err := svc.Register(ctx, domain.User{Username: "alice", Password: "passw0rd!", Role: "ADMIN"})

		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("passw0rd!"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := domain.User{ID: 3, Username: "bob", Password: string(hash), Role: domain.RoleStaff}

	tests := []struct {
		name     string
		username string
		password string
		findErr  error
		wantErr  error
	}{
		{name: "Success", username: "bob", password: "passw0rd!"},
		{name: "Wrong password", username: "bob", password: "nope", wantErr: ErrWrongPassword},
		{name: "Unknown user", username: "ghost", password: "passw0rd!", findErr: ErrUserNotFound, wantErr: ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			if tt.findErr != nil {
				repo.On("FindByUsername", mock.Anything, tt.username).Return(domain.User{}, tt.findErr)
			} else {
				repo.On("FindByUsername", mock.Anything, tt.username).Return(stored, nil)
			}

			user, err := NewAuthService(repo).Login(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)
		})
	}
}

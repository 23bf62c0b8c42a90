package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	principal := domain.Principal{Username: "carol", Role: domain.RoleClient}

	hash, err := bcrypt.GenerateFromPassword([]byte("oldPass123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := func() domain.User {
		return domain.User{
			ID:          5,
			Username:    "carol",
			Password:    string(hash),
			Email:       "carol@old.io",
			PhoneNumber: "111",
			FullName:    "Carol",
			Address:     "Old street",
		}
	}

	t.Run("Empty email is ignored and nil fields are kept", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByUsername", mock.Anything, "carol").Return(stored(), nil)
		repo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Email == "carol@old.io" && u.PhoneNumber == "222" && u.FullName == "Carol" && u.Address == ""
		})).Return(domain.User{ID: 5}, nil)

		_, err := NewUserService(repo).UpdateProfile(ctx, principal, domain.ProfileUpdate{
			Email:       strPtr(""),
			PhoneNumber: strPtr("222"),
			Address:     strPtr(""),
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("New password requires current password", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByUsername", mock.Anything, "carol").Return(stored(), nil)

		_, err := NewUserService(repo).UpdateProfile(ctx, principal, domain.ProfileUpdate{NewPassword: "newPass123"})

		assert.ErrorIs(t, err, ErrCurrentPasswordRequired)
		repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("Wrong current password", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByUsername", mock.Anything, "carol").Return(stored(), nil)

		_, err := NewUserService(repo).UpdateProfile(ctx, principal, domain.ProfileUpdate{
			CurrentPassword: "bad",
			NewPassword:     "newPass123",
		})

		assert.ErrorIs(t, err, ErrWrongCurrentPassword)
	})

	t.Run("Password change", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByUsername", mock.Anything, "carol").Return(stored(), nil)
		repo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newPass123")) == nil
		})).Return(domain.User{ID: 5}, nil)

		_, err := NewUserService(repo).UpdateProfile(ctx, principal, domain.ProfileUpdate{
			CurrentPassword: "oldPass123",
			NewPassword:     "newPass123",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown caller", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByUsername", mock.Anything, "carol").Return(domain.User{}, ErrUserNotFound)

		_, err := NewUserService(repo).UpdateProfile(ctx, principal, domain.ProfileUpdate{})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

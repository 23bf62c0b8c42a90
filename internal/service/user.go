package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/repository"
)

var (
	ErrUserNotFound            = repository.ErrUserNotFound
	ErrCurrentPasswordRequired = errors.New("current password is required to change the password")
	ErrWrongCurrentPassword    = errors.New("current password is incorrect")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByRole(ctx context.Context, role string) ([]domain.User, error)
	UpdateProfile(ctx context.Context, user domain.User) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetProfile(ctx context.Context, principal domain.Principal) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, principal.Username)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	return user, nil
}

// UpdateProfile applies the provided fields of upd to the caller's profile.
// An empty email is ignored. A new password is only set when the current one matches.
func (s *UserService) UpdateProfile(ctx context.Context, principal domain.Principal, upd domain.ProfileUpdate) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, principal.Username)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if upd.Email != nil && *upd.Email != "" {
		user.Email = *upd.Email
	}
	if upd.PhoneNumber != nil {
		user.PhoneNumber = *upd.PhoneNumber
	}
	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.Address != nil {
		user.Address = *upd.Address
	}

	if upd.NewPassword != "" {
		if upd.CurrentPassword == "" {
			return domain.User{}, ErrCurrentPasswordRequired
		}
		if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(upd.CurrentPassword)); err != nil {
			return domain.User{}, ErrWrongCurrentPassword
		}

		hashedPassword, err := hashPassword(upd.NewPassword)
		if err != nil {
			return domain.User{}, err
		}
		user.Password = hashedPassword
	}

	updated, err := s.repo.UpdateProfile(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.UpdateProfile -> %w", err)
	}

	return updated, nil
}

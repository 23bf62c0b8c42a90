package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

const (
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
)

var (
	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")

	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
)

// passwordRule checks the lookahead pattern, which the standard regexp package cannot express.
var passwordRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	ok, err := passwordExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidPassword
	}
	return nil
})

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (req *RegisterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&req.Password, validation.Required, passwordRule),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Role, validation.Required, validation.In(domain.RolePlanner, domain.RoleStaff, domain.RoleClient)),
	)
}

func (req *RegisterRequest) ToDomain() domain.User {
	return domain.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

type ProfileUpdateRequest struct {
	Email           *string `json:"email"`
	PhoneNumber     *string `json:"phoneNumber"`
	FullName        *string `json:"fullName"`
	Address         *string `json:"address"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     string  `json:"newPassword"`
}

func (req *ProfileUpdateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.FullName, validation.Length(0, 100)),
		validation.Field(&req.NewPassword, passwordRule),
	)
}

func (req *ProfileUpdateRequest) ToDomain() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		FullName:        req.FullName,
		Address:         req.Address,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}
}

package domain

import "time"

const (
	RolePlanner = "PLANNER"
	RoleStaff   = "STAFF"
	RoleClient  = "CLIENT"
)

type User struct {
	ID          uint      `json:"userId"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	PhoneNumber string    `json:"phoneNumber"`
	FullName    string    `json:"fullName"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	Username string
	Role     string
}

// ProfileUpdate holds the optional fields of a profile change. Nil means "leave as is".
type ProfileUpdate struct {
	Email           *string
	PhoneNumber     *string
	FullName        *string
	Address         *string
	CurrentPassword string
	NewPassword     string
}

func IsValidRole(role string) bool {
	switch role {
	case RolePlanner, RoleStaff, RoleClient:
		return true
	}
	return false
}

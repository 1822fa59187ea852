package domain

import (
	"strings"
	"time"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type UserRole string

const (
	UserRoleUser      UserRole = "User"
	UserRoleVolunteer UserRole = "Volunteer"
	UserRoleAdmin     UserRole = "admin"
)

func ParseUserStatus(s string) (UserStatus, bool) {
	switch UserStatus(s) {
	case UserStatusActive, UserStatusBlocked:
		return UserStatus(s), true
	}
	return "", false
}

type User struct {
	ID           int32      `json:"userId"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	PhoneNumber  string     `json:"phoneNumber"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"userStatus"`
	Location     string     `json:"location"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// IsVolunteer reports whether the user may accept tasks. The comparison is
// case-insensitive and ignores surrounding whitespace because roles were
// historically stored as free text.
func (u *User) IsVolunteer() bool {
	return strings.EqualFold(strings.TrimSpace(string(u.Role)), string(UserRoleVolunteer))
}

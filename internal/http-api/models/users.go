package models

import (
	"time"
)

// Role is the access level stored in users.role_id.
type Role int

const (
	RoleAdmin     Role = 1
	RoleModerator Role = 2
	RoleRegular   Role = 3
)

// IsStaff reports whether the role grants access to the administrative surface.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleModerator
}

// IsAdmin reports whether the role grants full administrative rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleModerator:
		return "moderator"
	case RoleRegular:
		return "regular"
	default:
		return "unknown"
	}
}

type User struct {
	ID        int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username  string    `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"` // Not show in JSON
	Role      Role      `gorm:"column:role_id;default:3;not null" json:"role_id"`
	Gender    *string   `gorm:"size:50" json:"gender,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Religion  *string   `gorm:"size:100" json:"religion,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

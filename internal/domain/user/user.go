// Package user holds the user entity and its repository contract.
package user

import (
	"time"

	"libris/internal/shared/authorization"
	"libris/internal/shared/constants"
)

// User is a library account: admin, librarian, or member. The password
// column is written on create/update only; read paths never select it.
type User struct {
	ID        uint               `gorm:"primarykey" json:"id"`
	Name      string             `gorm:"size:255" json:"name"`
	Email     string             `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string             `gorm:"size:255;not null" json:"-"`
	Role      authorization.Role `gorm:"size:32;default:member" json:"role"`
	Photo     string             `gorm:"size:512" json:"photo,omitempty"`
	Status    string             `gorm:"size:32;default:active" json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func (User) TableName() string {
	return constants.TableUsers
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == constants.UserStatusActive
}

// Update is the set of optional field changes applied by UpdateByID.
// Nil fields are left untouched.
type Update struct {
	Name     *string
	Email    *string
	Password *string
	Role     *authorization.Role
	Photo    *string
	Status   *string
}

// Filter narrows List results. Zero values are ignored.
type Filter struct {
	Role   string
	Status string
	Email  string
	Page   int
	Limit  int
}

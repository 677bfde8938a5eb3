package user

import "context"

// Repository persists users. Lookups return (nil, nil) when no record
// matches; read paths exclude the password column.
type Repository interface {
	Create(ctx context.Context, u *User) error
	List(ctx context.Context, filter Filter) ([]*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	UpdateByID(ctx context.Context, id uint, changes Update) (*User, error)

	// FindActiveByEmail returns the user with the password column loaded,
	// for credential verification. Inactive accounts are excluded.
	FindActiveByEmail(ctx context.Context, email string) (*User, error)
}

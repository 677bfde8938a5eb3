// Package author holds the author entity and its repository contract.
package author

import (
	"context"
	"time"

	"libris/internal/shared/constants"
)

type Author struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Author) TableName() string {
	return constants.TableAuthors
}

// Filter narrows List results. Zero values are ignored.
type Filter struct {
	Name  string
	Page  int
	Limit int
}

// Repository persists authors. Lookups return (nil, nil) when no record
// matches. DeleteByID cascades: the author's books are removed in the
// same transaction.
type Repository interface {
	Create(ctx context.Context, a *Author) error
	List(ctx context.Context, filter Filter) ([]*Author, error)
	GetByID(ctx context.Context, id uint) (*Author, error)
	UpdateByID(ctx context.Context, id uint, name string) (*Author, error)
	DeleteByID(ctx context.Context, id uint) (*Author, error)
}

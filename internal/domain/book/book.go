// Package book holds the book entity and its repository contract.
package book

import (
	"context"
	"time"

	"libris/internal/domain/author"
	"libris/internal/shared/constants"
)

// Book availability states.
const (
	StatusAvailable = constants.BookStatusAvailable
	StatusBorrowed  = constants.BookStatusBorrowed
)

// Book references its author; list and get paths denormalize the author
// record into the result. Status is borrowed exactly while the book sits
// on an accepted, not-yet-returned loan.
type Book struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"size:255" json:"name"`
	AuthorID  uint           `gorm:"not null;index" json:"authorId"`
	Author    *author.Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Genre     string         `gorm:"size:255" json:"genre"`
	Status    string         `gorm:"size:32;default:available" json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (Book) TableName() string {
	return constants.TableBooks
}

// Update is the set of optional field changes applied by UpdateByID.
type Update struct {
	Name     *string
	AuthorID *uint
	Genre    *string
	Status   *string
}

// Filter narrows List results. Zero values are ignored.
type Filter struct {
	Genre    string
	Status   string
	AuthorID uint
	Page     int
	Limit    int
}

// Repository persists books. Lookups return (nil, nil) when no record
// matches; List and GetByID preload the author.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	List(ctx context.Context, filter Filter) ([]*Book, error)
	GetByID(ctx context.Context, id uint) (*Book, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Book, error)
	UpdateByID(ctx context.Context, id uint, changes Update) (*Book, error)
	DeleteByID(ctx context.Context, id uint) (*Book, error)

	// SetStatus flips availability for a single book. It backs the loan
	// lifecycle fan-out and ordinary updates alike.
	SetStatus(ctx context.Context, id uint, status string) error
}

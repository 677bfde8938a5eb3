// Package loan holds the book-loan entity and its repository contract.
package loan

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"libris/internal/shared/constants"
)

// Loan lifecycle states. A loan is created pending; accept and return
// drive the book-availability side effects. Reject and return are
// terminal by convention, though the store does not hard-enforce that.
const (
	StatusPending = constants.LoanStatusPending
	StatusAccept  = constants.LoanStatusAccept
	StatusReject  = constants.LoanStatusReject
	StatusReturn  = constants.LoanStatusReturn
)

// BookLoan ties a member to one or more books for a borrowing period.
// The book-id list is stored as a JSON column, keeping the document
// flavor of the records this system exchanges.
type BookLoan struct {
	ID          uint                       `gorm:"primarykey" json:"id"`
	MemberID    uint                       `gorm:"not null;index" json:"memberId"`
	Books       datatypes.JSONSlice[uint]  `json:"books"`
	ReceiveDate time.Time                  `json:"receiveDate"`
	ReturnDate  time.Time                  `json:"returnDate"`
	Status      string                     `gorm:"size:32;default:pending" json:"status"`
	CreatedAt   time.Time                  `json:"createdAt"`
	UpdatedAt   time.Time                  `json:"updatedAt"`
}

func (BookLoan) TableName() string {
	return constants.TableBookLoans
}

// HasBook reports whether the loan already references the book id.
func (l *BookLoan) HasBook(id uint) bool {
	for _, b := range l.Books {
		if b == id {
			return true
		}
	}
	return false
}

// AddBooks unions new book ids into the loan's list, preserving order and
// ignoring duplicates.
func (l *BookLoan) AddBooks(ids []uint) {
	for _, id := range ids {
		if !l.HasBook(id) {
			l.Books = append(l.Books, id)
		}
	}
}

// Update is the set of optional field changes applied by UpdateByID.
// Books are additive: ids listed here are unioned into the stored list.
type Update struct {
	Books       []uint
	ReceiveDate *time.Time
	ReturnDate  *time.Time
	Status      *string
}

// Filter narrows List results. Zero values are ignored.
type Filter struct {
	MemberID uint
	Status   string
	Page     int
	Limit    int
}

// Repository persists book loans. Lookups return (nil, nil) when no
// record matches.
type Repository interface {
	Create(ctx context.Context, l *BookLoan) error
	List(ctx context.Context, filter Filter) ([]*BookLoan, error)
	ListAll(ctx context.Context) ([]*BookLoan, error)
	GetByID(ctx context.Context, id uint) (*BookLoan, error)
	Save(ctx context.Context, l *BookLoan) error
	DeleteByID(ctx context.Context, id uint) (*BookLoan, error)
}

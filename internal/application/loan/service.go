// Package loan implements the loan lifecycle: status transitions and
// their side effects on book availability.
package loan

import (
	"context"
	"time"

	"libris/internal/domain/book"
	"libris/internal/domain/loan"
	"libris/internal/domain/user"
	"libris/internal/shared/errors"
	"libris/internal/shared/logger"
)

// Service owns the relationship between a loan's status and the
// availability of the books it references. It is the only component that
// writes book status as a derived effect.
type Service struct {
	loans  loan.Repository
	books  book.Repository
	users  user.Repository
	logger logger.Interface
}

func NewService(loans loan.Repository, books book.Repository, users user.Repository, log logger.Interface) *Service {
	return &Service{
		loans:  loans,
		books:  books,
		users:  users,
		logger: log,
	}
}

// CreateInput carries the fields a member supplies when requesting books.
type CreateInput struct {
	Books       []uint
	ReceiveDate time.Time
	ReturnDate  time.Time
}

// Create opens a loan in the pending state. Requesting books does not
// touch their availability; only acceptance does.
func (s *Service) Create(ctx context.Context, memberID uint, input CreateInput) (*loan.BookLoan, error) {
	l := &loan.BookLoan{
		MemberID:    memberID,
		ReceiveDate: input.ReceiveDate,
		ReturnDate:  input.ReturnDate,
		Status:      loan.StatusPending,
	}
	l.AddBooks(input.Books)

	if err := s.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Get returns the loan or a not-found error.
func (s *Service) Get(ctx context.Context, id uint) (*loan.BookLoan, error) {
	l, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, errors.NewNotFoundError("books loan not found")
	}
	return l, nil
}

// List returns a page of loans.
func (s *Service) List(ctx context.Context, filter loan.Filter) ([]*loan.BookLoan, error) {
	return s.loans.List(ctx, filter)
}

// Update applies field changes to a loan and runs the availability side
// effects its new status demands. Loan ownership is not part of the
// change set: memberId can never be reassigned through this path. Book
// ids are unioned into the stored list, never replacing it.
//
// The loan update is persisted first; the book-status fan-out runs
// afterwards against the post-update book list, best-effort. A failed
// book write is logged and skipped, so update success never depends on
// the side effects.
func (s *Service) Update(ctx context.Context, id uint, changes loan.Update) (*loan.BookLoan, error) {
	l, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, errors.NewNotFoundError("books loan not found")
	}

	l.AddBooks(changes.Books)
	if changes.ReceiveDate != nil {
		l.ReceiveDate = *changes.ReceiveDate
	}
	if changes.ReturnDate != nil {
		l.ReturnDate = *changes.ReturnDate
	}
	if changes.Status != nil {
		l.Status = *changes.Status
	}

	if err := s.loans.Save(ctx, l); err != nil {
		return nil, err
	}

	s.applyBookStatus(ctx, l)

	return l, nil
}

// applyBookStatus fans the loan's status out to its books: accept marks
// them borrowed, return marks them available, anything else is a no-op.
func (s *Service) applyBookStatus(ctx context.Context, l *loan.BookLoan) {
	var target string
	switch l.Status {
	case loan.StatusAccept:
		target = book.StatusBorrowed
	case loan.StatusReturn:
		target = book.StatusAvailable
	default:
		return
	}

	failed := 0
	for _, bookID := range l.Books {
		if err := s.books.SetStatus(ctx, bookID, target); err != nil {
			failed++
			s.logger.Errorw("failed to update book status for loan",
				"loan_id", l.ID, "book_id", bookID, "status", target, "error", err)
		}
	}
	if failed > 0 {
		s.logger.Warnw("loan status side effects partially failed",
			"loan_id", l.ID, "status", l.Status, "failed", failed, "total", len(l.Books))
	}
}

// Delete removes the loan record. Book availability is left untouched.
func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.loans.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return errors.NewNotFoundError("books loan not found")
	}
	return nil
}

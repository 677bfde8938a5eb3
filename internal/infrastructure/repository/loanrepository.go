package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"libris/internal/domain/loan"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// LoanRepository implements loan.Repository on gorm.
type LoanRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLoanRepository(db *gorm.DB, logger logger.Interface) loan.Repository {
	return &LoanRepository{
		db:     db,
		logger: logger,
	}
}

func (r *LoanRepository) Create(ctx context.Context, l *loan.BookLoan) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		r.logger.Errorw("failed to create book loan", "member_id", l.MemberID, "error", err)
		return fmt.Errorf("failed to create book loan: %w", err)
	}

	r.logger.Infow("book loan created", "id", l.ID, "member_id", l.MemberID)
	return nil
}

func (r *LoanRepository) List(ctx context.Context, filter loan.Filter) ([]*loan.BookLoan, error) {
	page := utils.ValidatePagination(filter.Page, filter.Limit)

	query := r.db.WithContext(ctx)
	if filter.MemberID != 0 {
		query = query.Where("member_id = ?", filter.MemberID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var loans []*loan.BookLoan
	err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&loans).Error
	if err != nil {
		r.logger.Errorw("failed to list book loans", "error", err)
		return nil, fmt.Errorf("failed to list book loans: %w", err)
	}

	return loans, nil
}

// ListAll returns every loan in natural storage order, for the export
// aggregation.
func (r *LoanRepository) ListAll(ctx context.Context) ([]*loan.BookLoan, error) {
	var loans []*loan.BookLoan
	if err := r.db.WithContext(ctx).Find(&loans).Error; err != nil {
		r.logger.Errorw("failed to list all book loans", "error", err)
		return nil, fmt.Errorf("failed to list book loans: %w", err)
	}
	return loans, nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint) (*loan.BookLoan, error) {
	var l loan.BookLoan
	err := r.db.WithContext(ctx).First(&l, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get book loan", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get book loan: %w", err)
	}
	return &l, nil
}

// Save persists the full loan record, book list included.
func (r *LoanRepository) Save(ctx context.Context, l *loan.BookLoan) error {
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		r.logger.Errorw("failed to save book loan", "id", l.ID, "error", err)
		return fmt.Errorf("failed to save book loan: %w", err)
	}
	return nil
}

func (r *LoanRepository) DeleteByID(ctx context.Context, id uint) (*loan.BookLoan, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Delete(&loan.BookLoan{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete book loan", "id", id, "error", err)
		return nil, fmt.Errorf("failed to delete book loan: %w", err)
	}

	return existing, nil
}

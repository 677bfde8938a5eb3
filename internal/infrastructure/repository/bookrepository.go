package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"libris/internal/domain/book"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// BookRepository implements book.Repository on gorm. Read paths preload
// the author so responses carry the denormalized record.
type BookRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBookRepository(db *gorm.DB, logger logger.Interface) book.Repository {
	return &BookRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		r.logger.Errorw("failed to create book", "name", b.Name, "error", err)
		return fmt.Errorf("failed to create book: %w", err)
	}

	r.logger.Infow("book created", "id", b.ID, "name", b.Name)
	return nil
}

func (r *BookRepository) List(ctx context.Context, filter book.Filter) ([]*book.Book, error) {
	page := utils.ValidatePagination(filter.Page, filter.Limit)

	query := r.db.WithContext(ctx).Preload("Author")
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}

	var books []*book.Book
	err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&books).Error
	if err != nil {
		r.logger.Errorw("failed to list books", "error", err)
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return books, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uint) (*book.Book, error) {
	var b book.Book
	err := r.db.WithContext(ctx).Preload("Author").First(&b, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get book", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &b, nil
}

func (r *BookRepository) GetByIDs(ctx context.Context, ids []uint) ([]*book.Book, error) {
	if len(ids) == 0 {
		return []*book.Book{}, nil
	}

	var books []*book.Book
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&books).Error
	if err != nil {
		r.logger.Errorw("failed to get books by ids", "ids", ids, "error", err)
		return nil, fmt.Errorf("failed to get books: %w", err)
	}
	return books, nil
}

func (r *BookRepository) UpdateByID(ctx context.Context, id uint, changes book.Update) (*book.Book, error) {
	updates := map[string]interface{}{}
	if changes.Name != nil {
		updates["name"] = *changes.Name
	}
	if changes.AuthorID != nil {
		updates["author_id"] = *changes.AuthorID
	}
	if changes.Genre != nil {
		updates["genre"] = *changes.Genre
	}
	if changes.Status != nil {
		updates["status"] = *changes.Status
	}

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&book.Book{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			r.logger.Errorw("failed to update book", "id", id, "error", err)
			return nil, fmt.Errorf("failed to update book: %w", err)
		}
	}

	return r.GetByID(ctx, id)
}

func (r *BookRepository) DeleteByID(ctx context.Context, id uint) (*book.Book, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Delete(&book.Book{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete book", "id", id, "error", err)
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}

	return existing, nil
}

// SetStatus flips a single book's availability. Used by the loan
// lifecycle fan-out and by ordinary updates.
func (r *BookRepository) SetStatus(ctx context.Context, id uint, status string) error {
	err := r.db.WithContext(ctx).
		Model(&book.Book{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		r.logger.Errorw("failed to set book status", "id", id, "status", status, "error", err)
		return fmt.Errorf("failed to set book status: %w", err)
	}
	return nil
}

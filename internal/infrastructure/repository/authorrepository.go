package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"libris/internal/domain/author"
	"libris/internal/domain/book"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// AuthorRepository implements author.Repository on gorm.
type AuthorRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAuthorRepository(db *gorm.DB, logger logger.Interface) author.Repository {
	return &AuthorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AuthorRepository) Create(ctx context.Context, a *author.Author) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		r.logger.Errorw("failed to create author", "name", a.Name, "error", err)
		return fmt.Errorf("failed to create author: %w", err)
	}

	r.logger.Infow("author created", "id", a.ID, "name", a.Name)
	return nil
}

func (r *AuthorRepository) List(ctx context.Context, filter author.Filter) ([]*author.Author, error) {
	page := utils.ValidatePagination(filter.Page, filter.Limit)

	query := r.db.WithContext(ctx)
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	var authors []*author.Author
	err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&authors).Error
	if err != nil {
		r.logger.Errorw("failed to list authors", "error", err)
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return authors, nil
}

func (r *AuthorRepository) GetByID(ctx context.Context, id uint) (*author.Author, error) {
	var a author.Author
	err := r.db.WithContext(ctx).First(&a, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get author", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return &a, nil
}

func (r *AuthorRepository) UpdateByID(ctx context.Context, id uint, name string) (*author.Author, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	err = r.db.WithContext(ctx).
		Model(&author.Author{}).
		Where("id = ?", id).
		Update("name", name).Error
	if err != nil {
		r.logger.Errorw("failed to update author", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return r.GetByID(ctx, id)
}

// DeleteByID removes the author and every book referencing it, in one
// transaction. Returns (nil, nil) when the id has no live record.
func (r *AuthorRepository) DeleteByID(ctx context.Context, id uint) (*author.Author, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&book.Book{}).Error; err != nil {
			return err
		}
		return tx.Delete(&author.Author{}, id).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete author", "id", id, "error", err)
		return nil, fmt.Errorf("failed to delete author: %w", err)
	}

	r.logger.Infow("author deleted with book cascade", "id", id)
	return existing, nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"libris/internal/domain/user"
	"libris/internal/shared/constants"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// userReadColumns keeps the password column out of every read path.
var userReadColumns = []string{
	"id", "name", "email", "role", "photo", "status", "created_at", "updated_at",
}

// UserRepository implements user.Repository on gorm.
type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user. The caller hashes the password first.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		r.logger.Errorw("failed to create user", "email", u.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Infow("user created", "id", u.ID, "email", u.Email)
	return nil
}

// List returns a page of users, newest first, password excluded.
func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, error) {
	page := utils.ValidatePagination(filter.Page, filter.Limit)

	query := r.db.WithContext(ctx).Select(userReadColumns)
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}

	var users []*user.User
	err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&users).Error
	if err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// GetByID returns the user or (nil, nil) when absent; password excluded.
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).Select(userReadColumns).First(&u, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// UpdateByID applies the non-nil changes and returns the updated record,
// or (nil, nil) when the id has no live record.
func (r *UserRepository) UpdateByID(ctx context.Context, id uint, changes user.Update) (*user.User, error) {
	updates := map[string]interface{}{}
	if changes.Name != nil {
		updates["name"] = *changes.Name
	}
	if changes.Email != nil {
		updates["email"] = *changes.Email
	}
	if changes.Password != nil {
		updates["password"] = *changes.Password
	}
	if changes.Role != nil {
		updates["role"] = *changes.Role
	}
	if changes.Photo != nil {
		updates["photo"] = *changes.Photo
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
			Model(&user.User{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			r.logger.Errorw("failed to update user", "id", id, "error", err)
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return r.GetByID(ctx, id)
}

// FindActiveByEmail loads the full record, password included, for
// credential verification. Inactive accounts are never returned.
func (r *UserRepository) FindActiveByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND status <> ?", email, constants.UserStatusInactive).
		First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find user by email", "error", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

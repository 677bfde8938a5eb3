package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"libris/internal/domain/author"
	"libris/internal/domain/book"
	"libris/internal/domain/loan"
	"libris/internal/domain/user"
	"libris/internal/shared/authorization"
	"libris/internal/shared/logger"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&author.Author{},
		&book.Book{},
		&loan.BookLoan{},
	))

	return db
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func seedAuthor(t *testing.T, db *gorm.DB, name string) *author.Author {
	t.Helper()
	a := &author.Author{Name: name}
	require.NoError(t, db.Create(a).Error)
	return a
}

func seedBook(t *testing.T, db *gorm.DB, name string, authorID uint) *book.Book {
	t.Helper()
	b := &book.Book{Name: name, AuthorID: authorID, Genre: "fiction", Status: book.StatusAvailable}
	require.NoError(t, db.Create(b).Error)
	return b
}

func seedUser(t *testing.T, db *gorm.DB, email, role, status string) *user.User {
	t.Helper()
	u := &user.User{
		Name:     "Test User",
		Email:    email,
		Password: "$2a$04$fakehashfakehashfakehash",
		Role:     authorization.Role(role),
		Status:   status,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func mustCtx() context.Context {
	return context.Background()
}

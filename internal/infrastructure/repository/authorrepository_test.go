package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libris/internal/domain/author"
	"libris/internal/domain/book"
)

func TestAuthorRepositoryCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db, testLogger())

	a := &author.Author{Name: "Iris Murdoch"}
	require.NoError(t, repo.Create(mustCtx(), a))
	require.NotZero(t, a.ID)

	got, err := repo.GetByID(mustCtx(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Iris Murdoch", got.Name)

	updated, err := repo.UpdateByID(mustCtx(), a.ID, "I. Murdoch")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "I. Murdoch", updated.Name)

	missing, err := repo.GetByID(mustCtx(), 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAuthorRepositoryDeleteCascadesBooks(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db, testLogger())
	books := NewBookRepository(db, testLogger())

	a := seedAuthor(t, db, "Cascade Author")
	other := seedAuthor(t, db, "Other Author")

	x := seedBook(t, db, "Book X", a.ID)
	y := seedBook(t, db, "Book Y", a.ID)
	kept := seedBook(t, db, "Kept Book", other.ID)

	deleted, err := repo.DeleteByID(mustCtx(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, a.ID, deleted.ID)

	// the author's books are gone
	for _, id := range []uint{x.ID, y.ID} {
		got, err := books.GetByID(mustCtx(), id)
		require.NoError(t, err)
		assert.Nil(t, got, "book %d should be cascade-deleted", id)
	}

	// the other author's book survives
	got, err := books.GetByID(mustCtx(), kept.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// the author itself is gone
	gone, err := repo.GetByID(mustCtx(), a.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestAuthorRepositoryDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db, testLogger())

	deleted, err := repo.DeleteByID(mustCtx(), 42)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestAuthorRepositoryListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorRepository(db, testLogger())

	for _, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, repo.Create(mustCtx(), &author.Author{Name: name}))
	}

	list, err := repo.List(mustCtx(), author.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 3)

	list, err = repo.List(mustCtx(), author.Filter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(mustCtx(), author.Filter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookRepositoryPreloadsAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db, testLogger())

	a := seedAuthor(t, db, "Joined Author")
	b := seedBook(t, db, "Joined Book", a.ID)

	got, err := repo.GetByID(mustCtx(), b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Author)
	assert.Equal(t, "Joined Author", got.Author.Name)

	list, err := repo.List(mustCtx(), book.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Author)
}

func TestBookRepositorySetStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db, testLogger())

	a := seedAuthor(t, db, "A")
	b := seedBook(t, db, "B", a.ID)

	require.NoError(t, repo.SetStatus(mustCtx(), b.ID, book.StatusBorrowed))

	got, err := repo.GetByID(mustCtx(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, book.StatusBorrowed, got.Status)

	require.NoError(t, repo.SetStatus(mustCtx(), b.ID, book.StatusAvailable))
	got, err = repo.GetByID(mustCtx(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, book.StatusAvailable, got.Status)
}

func TestBookRepositoryListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db, testLogger())

	a := seedAuthor(t, db, "A")
	seedBook(t, db, "B1", a.ID)
	b2 := seedBook(t, db, "B2", a.ID)
	require.NoError(t, repo.SetStatus(mustCtx(), b2.ID, book.StatusBorrowed))

	borrowed, err := repo.List(mustCtx(), book.Filter{Status: book.StatusBorrowed})
	require.NoError(t, err)
	require.Len(t, borrowed, 1)
	assert.Equal(t, "B2", borrowed[0].Name)
}

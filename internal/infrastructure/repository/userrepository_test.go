package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libris/internal/domain/user"
	"libris/internal/shared/authorization"
	"libris/internal/shared/constants"
)

func TestUserRepositoryReadsExcludePassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, testLogger())

	seeded := seedUser(t, db, "member@example.com", "member", constants.UserStatusActive)

	got, err := repo.GetByID(mustCtx(), seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Password)
	assert.Equal(t, "member@example.com", got.Email)

	list, err := repo.List(mustCtx(), user.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Password)
}

func TestUserRepositoryGetByIDIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, testLogger())

	seeded := seedUser(t, db, "member@example.com", "member", constants.UserStatusActive)

	first, err := repo.GetByID(mustCtx(), seeded.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(mustCtx(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, testLogger())

	got, err := repo.GetByID(mustCtx(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepositoryUpdateByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, testLogger())

	seeded := seedUser(t, db, "member@example.com", "member", constants.UserStatusActive)

	name := "Renamed"
	role := authorization.RoleLibrarian
	got, err := repo.UpdateByID(mustCtx(), seeded.ID, user.Update{Name: &name, Role: &role})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, authorization.RoleLibrarian, got.Role)

	missing, err := repo.UpdateByID(mustCtx(), 999, user.Update{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryFindActiveByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, testLogger())

	seedUser(t, db, "active@example.com", "member", constants.UserStatusActive)
	seedUser(t, db, "inactive@example.com", "member", constants.UserStatusInactive)

	active, err := repo.FindActiveByEmail(mustCtx(), "active@example.com")
	require.NoError(t, err)
	require.NotNil(t, active)
	// login path needs the stored hash
	assert.NotEmpty(t, active.Password)

	// inactive accounts are invisible to the login lookup
	inactive, err := repo.FindActiveByEmail(mustCtx(), "inactive@example.com")
	require.NoError(t, err)
	assert.Nil(t, inactive)

	missing, err := repo.FindActiveByEmail(mustCtx(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

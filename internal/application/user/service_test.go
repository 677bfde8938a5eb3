package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"libris/internal/domain/user"
	"libris/internal/infrastructure/auth"
	"libris/internal/infrastructure/repository"
	"libris/internal/shared/authorization"
	"libris/internal/shared/errors"
	"libris/internal/shared/logger"
)

func newService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}))

	log := logger.NewLogger()
	svc := NewService(
		repository.NewUserRepository(db, log),
		auth.NewBcryptPasswordHasher(bcryptTestCost),
		auth.NewJWTCodec("test-secret", 60),
		log,
	)
	return svc, db
}

// low cost keeps hashing fast in tests
const bcryptTestCost = 4

func TestSignupIssuesToken(t *testing.T) {
	svc, _ := newService(t)

	u, token, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Akash",
		Email:    "akash@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.NotEmpty(t, token)

	assert.Equal(t, authorization.RoleMember, u.Role)

	claims, err := auth.NewJWTCodec("test-secret", 60).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "Akash", claims.Name)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)

	input := SignupInput{Name: "Akash", Email: "akash@example.com", Password: "secret123"}
	_, _, err := svc.Signup(context.Background(), input)
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), input)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestSignupRejectsBadInput(t *testing.T) {
	svc, _ := newService(t)

	cases := []SignupInput{
		{Name: "Akash", Email: "not-an-email", Password: "secret123"},
		{Name: "Akash", Email: "akash@example.com", Password: "short"},
		{Email: "akash@example.com", Password: "secret123"},
		{Name: "Akash", Email: "akash@example.com", Password: "secret123", Role: "owner"},
	}
	for _, input := range cases {
		_, _, err := svc.Signup(context.Background(), input)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err), "input %+v", input)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.Signup(context.Background(), SignupInput{
		Name: "Akash", Email: "akash@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	u, token, err := svc.Login(context.Background(), "akash@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "Akash", u.Name)
	assert.Empty(t, u.Password)
}

func TestLoginWrongCredentials(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.Signup(context.Background(), SignupInput{
		Name: "Akash", Email: "akash@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	// wrong password and unknown email fail identically
	_, _, badPass := svc.Login(context.Background(), "akash@example.com", "nope")
	_, _, badMail := svc.Login(context.Background(), "nobody@example.com", "secret123")
	for _, err := range []error{badPass, badMail} {
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
		assert.Equal(t, "wrong email or password", appErr.Message)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, db := newService(t)

	u, _, err := svc.Signup(context.Background(), SignupInput{
		Name: "Akash", Email: "akash@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&user.User{}).Where("id = ?", u.ID).Update("status", "inactive").Error)

	// the right password does not help a deactivated account
	_, _, err = svc.Login(context.Background(), "akash@example.com", "secret123")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
}

func TestUpdateRehashesPassword(t *testing.T) {
	svc, _ := newService(t)

	u, _, err := svc.Signup(context.Background(), SignupInput{
		Name: "Akash", Email: "akash@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	newPass := "changed456"
	_, err = svc.Update(context.Background(), u.ID, user.Update{Password: &newPass})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "akash@example.com", "secret123")
	require.Error(t, err)
	_, _, err = svc.Login(context.Background(), "akash@example.com", "changed456")
	require.NoError(t, err)
}

func TestEnsureAdmin(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@gmail.com", "admin"))
	// idempotent across restarts
	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@gmail.com", "admin"))

	u, _, err := svc.Login(context.Background(), "admin@gmail.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, u.Role)

	users, err := svc.List(context.Background(), user.Filter{Email: "admin@gmail.com"})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

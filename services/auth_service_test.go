package services

import (
	"testing"
	"time"

	"ecomm/entity"
	"ecomm/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	token, user, err := svc.Register("alice", "Alice@Test.dev", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "alice@test.dev", user.Email)
	require.Equal(t, entity.RoleCustomer, user.Role)
	require.Equal(t, entity.TierNormal, user.Tier)

	// login is case-insensitive on email
	token, logged, err := svc.Login("ALICE@test.dev", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, _, err := svc.Register("alice", "alice@test.dev", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Register("alice2", "alice@test.dev", "other")
	require.ErrorIs(t, err, ErrUserExists)
}

func TestLoginIndistinguishableFailures(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, _, err := svc.Register("alice", "alice@test.dev", "hunter22")
	require.NoError(t, err)

	_, _, wrongPass := svc.Login("alice@test.dev", "nope")
	_, _, noUser := svc.Login("ghost@test.dev", "hunter22")

	require.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	require.ErrorIs(t, noUser, ErrInvalidCredentials)
}

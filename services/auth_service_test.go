package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
	"github.com/vaibhavmehta2503/Dine-Qr/repository"
	"github.com/vaibhavmehta2503/Dine-Qr/utils"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewAuthService(repo, "test-secret", time.Hour), repo
}

func TestSignupAndLogin(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)

	user, err := svc.Signup("Dina", "Dina@Example.com", "secret1", nil)
	require.NoError(t, err)
	assert.Equal(t, "dina@example.com", user.Email)
	assert.Equal(t, identity.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret1", user.Password)

	_, err = svc.Signup("Dina Again", "dina@example.com", "other", nil)
	assert.ErrorIs(t, err, ErrBadRequest)

	token, logged, err := svc.Login("dina@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "dina@example.com", claims.Email)
	assert.Equal(t, identity.RoleCustomer, claims.Role)
	assert.Equal(t, uint(0), claims.RestaurantID)

	_, _, err = svc.Login("dina@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, _, err = svc.Login("nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUpdateRole_RestaurantBinding(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	user, err := svc.Signup("S", "s@example.com", "secret1", nil)
	require.NoError(t, err)

	restA, restB := uint(1), uint(2)

	// A regular admin may only bind staff to their own restaurant.
	adminA := adminIdentity(restA)
	_, err = svc.UpdateRole(adminA, user.ID, identity.RoleStaff, &restB)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateRole(adminA, user.ID, identity.RoleStaff, &restA)
	require.NoError(t, err)
	assert.Equal(t, identity.RoleStaff, updated.Role)
	require.NotNil(t, updated.RestaurantID)
	assert.Equal(t, restA, *updated.RestaurantID)

	// Superadmin binds anywhere.
	root := identity.Identity{Authenticated: true, UserID: 1, Role: identity.RoleSuperadmin}
	updated, err = svc.UpdateRole(root, user.ID, identity.RoleStaff, &restB)
	require.NoError(t, err)
	require.NotNil(t, updated.RestaurantID)
	assert.Equal(t, restB, *updated.RestaurantID)

	// Role checks.
	_, err = svc.UpdateRole(adminA, user.ID, "superadmin", nil)
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = svc.UpdateRole(customerIdentity(5, "c@e.com"), user.ID, identity.RoleStaff, nil)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.UpdateRole(adminA, 999, identity.RoleCustomer, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

package repositories

import (
	"Ensurance/pharmacy/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(cui, email string) *models.User {
	return &models.User{
		Name:     "Jane Roe",
		CUI:      cui,
		Email:    email,
		Password: "s3cret",
		Enabled:  1,
	}
}

func TestUserCreateAndLogin(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := testUser("0012345678901", "jane@example.com")
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.IDUser)

	found, err := repo.Login(ctx, "jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "0012345678901", found.CUI)

	_, err = repo.Login(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserCreateDuplicateEmailOrCUI(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("0012345678901", "jane@example.com")))

	assert.ErrorIs(t, repo.Create(ctx, testUser("0098765432109", "jane@example.com")), ErrConflict)
	assert.ErrorIs(t, repo.Create(ctx, testUser("0012345678901", "other@example.com")), ErrConflict)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserGetByEmailPreloadsPolicy(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	policy := &models.Policy{Percentage: 80, Enabled: 1}
	require.NoError(t, db.Create(policy).Error)

	user := testUser("0012345678901", "jane@example.com")
	user.IDPolicy = &policy.IDPolicy
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, found.Policy)
	assert.Equal(t, 80.0, found.Policy.Percentage)
}

package repositories

import (
	"Ensurance/insurance/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrudRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewCrudRepository[models.Pharmacy](db, "id_pharmacy")
	ctx := context.Background()

	pharmacy := &models.Pharmacy{Name: "Central", Address: "1st Ave", Enabled: 1}
	require.NoError(t, repo.Create(ctx, pharmacy))
	require.NotZero(t, pharmacy.IDPharmacy)

	found, err := repo.GetByID(ctx, pharmacy.IDPharmacy)
	require.NoError(t, err)
	assert.Equal(t, "Central", found.Name)
	assert.Equal(t, "1st Ave", found.Address)
}

func TestCrudRepositoryGetByIDMiss(t *testing.T) {
	db := newTestDB(t)
	repo := NewCrudRepository[models.Pharmacy](db, "id_pharmacy")

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCrudRepositoryGetAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewCrudRepository[models.Pharmacy](db, "id_pharmacy")
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.Create(ctx, &models.Pharmacy{Name: "A", Enabled: 1}))
	require.NoError(t, repo.Create(ctx, &models.Pharmacy{Name: "B", Enabled: 1}))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCrudRepositoryUpdateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewCrudRepository[models.Pharmacy](db, "id_pharmacy")
	ctx := context.Background()

	pharmacy := &models.Pharmacy{Name: "Central", Enabled: 1}
	require.NoError(t, repo.Create(ctx, pharmacy))

	pharmacy.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, pharmacy.IDPharmacy, pharmacy))
	require.NoError(t, repo.Update(ctx, pharmacy.IDPharmacy, pharmacy))

	found, err := repo.GetByID(ctx, pharmacy.IDPharmacy)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCrudRepositoryUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewCrudRepository[models.Pharmacy](db, "id_pharmacy")

	err := repo.Update(context.Background(), 42, &models.Pharmacy{IDPharmacy: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCrudRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewCrudRepository[models.Pharmacy](db, "id_pharmacy")
	ctx := context.Background()

	pharmacy := &models.Pharmacy{Name: "Central", Enabled: 1}
	require.NoError(t, repo.Create(ctx, pharmacy))
	require.NoError(t, repo.Delete(ctx, pharmacy.IDPharmacy))

	_, err := repo.GetByID(ctx, pharmacy.IDPharmacy)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, pharmacy.IDPharmacy), ErrNotFound)
}

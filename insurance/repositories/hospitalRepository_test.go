package repositories

import (
	"Ensurance/cache"
	"Ensurance/insurance/models"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c, err := cache.NewCache(client)
	require.NoError(t, err)
	return c, mr
}

func newHospitalRepo(t *testing.T) (*HospitalRepository, *miniredis.Miniredis, *gorm.DB) {
	db := newTestDB(t)
	c, mr := newTestCache(t)
	return NewHospitalRepository(db, c), mr, db
}

func TestHospitalGetAllPopulatesCache(t *testing.T) {
	repo, mr, _ := newHospitalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Hospital{Name: "General", Enabled: 1, Port: "9001"}))

	hospitals, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, hospitals, 1)

	assert.True(t, mr.Exists("hospitals_cache"))
}

func TestHospitalGetAllServedFromCache(t *testing.T) {
	repo, _, db := newHospitalRepo(t)
	ctx := context.Background()

	hospital := &models.Hospital{Name: "General", Enabled: 1}
	require.NoError(t, repo.Create(ctx, hospital))

	_, err := repo.GetAll(ctx)
	require.NoError(t, err)

	// Bypass the repository so the cache keeps the old row.
	require.NoError(t, db.Delete(&models.Hospital{}, hospital.IDHospital).Error)

	hospitals, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, hospitals, 1)
}

func TestHospitalWritesInvalidateCache(t *testing.T) {
	repo, mr, _ := newHospitalRepo(t)
	ctx := context.Background()

	first := &models.Hospital{Name: "General", Enabled: 1}
	require.NoError(t, repo.Create(ctx, first))

	_, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists("hospitals_cache"))

	require.NoError(t, repo.Create(ctx, &models.Hospital{Name: "Regional", Enabled: 1}))
	assert.False(t, mr.Exists("hospitals_cache"))

	hospitals, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, hospitals, 2)
}

func TestHospitalGetByIDCachesRecord(t *testing.T) {
	repo, mr, _ := newHospitalRepo(t)
	ctx := context.Background()

	hospital := &models.Hospital{Name: "General", Enabled: 1}
	require.NoError(t, repo.Create(ctx, hospital))

	found, err := repo.GetByID(ctx, hospital.IDHospital)
	require.NoError(t, err)
	assert.Equal(t, "General", found.Name)
	assert.True(t, mr.Exists(hospitalCacheKey(hospital.IDHospital)))

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

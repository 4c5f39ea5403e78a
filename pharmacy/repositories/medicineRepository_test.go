package repositories

import (
	"Ensurance/cache"
	"Ensurance/pharmacy/models"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMedicineRepo(t *testing.T) (*MedicineRepository, *miniredis.Miniredis, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c, err := cache.NewCache(client)
	require.NoError(t, err)
	return NewMedicineRepository(db, c), mr, db
}

func seedMedicines(t *testing.T, repo *MedicineRepository, db *gorm.DB) {
	t.Helper()
	ctx := context.Background()

	painkillers := &models.Category{Name: "Painkillers"}
	antibiotics := &models.Category{Name: "Antibiotics"}
	sub := &models.Subcategory{Name: "Oral"}
	require.NoError(t, db.Create(painkillers).Error)
	require.NoError(t, db.Create(antibiotics).Error)
	require.NoError(t, db.Create(sub).Error)

	paracetamol := &models.Medicine{Name: "Paracetamol", Price: 60, Stock: 85}
	amoxicillin := &models.Medicine{Name: "Amoxicillin", Price: 120, Stock: 40}
	require.NoError(t, repo.Create(ctx, paracetamol))
	require.NoError(t, repo.Create(ctx, amoxicillin))

	require.NoError(t, db.Create(&models.MedicineCatSubcat{
		MedicineID: paracetamol.IDMedicine, CategoryID: painkillers.IDCategory, SubcategoryID: sub.IDSubcategory,
	}).Error)
	require.NoError(t, db.Create(&models.MedicineCatSubcat{
		MedicineID: amoxicillin.IDMedicine, CategoryID: antibiotics.IDCategory, SubcategoryID: sub.IDSubcategory,
	}).Error)
}

func TestMedicineSearchByName(t *testing.T) {
	repo, _, db := newMedicineRepo(t)
	seedMedicines(t, repo, db)

	results, err := repo.Search(context.Background(), "Para", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Paracetamol", results[0].Name)
}

func TestMedicineSearchByCategory(t *testing.T) {
	repo, _, db := newMedicineRepo(t)
	seedMedicines(t, repo, db)

	results, err := repo.Search(context.Background(), "", "Antibiotics")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Amoxicillin", results[0].Name)
}

func TestMedicineSearchEmptyFiltersMatchAll(t *testing.T) {
	repo, _, db := newMedicineRepo(t)
	seedMedicines(t, repo, db)

	results, err := repo.Search(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestMedicineGetAllCachesAndInvalidates(t *testing.T) {
	repo, mr, db := newMedicineRepo(t)
	seedMedicines(t, repo, db)
	ctx := context.Background()

	medicines, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, medicines, 2)
	assert.True(t, mr.Exists("medicines_cache"))

	require.NoError(t, repo.Create(ctx, &models.Medicine{Name: "Ibuprofen", Price: 45}))
	assert.False(t, mr.Exists("medicines_cache"))

	medicines, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, medicines, 3)
}

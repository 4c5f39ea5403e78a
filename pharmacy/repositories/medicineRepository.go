package repositories

import (
	"Ensurance/cache"
	"Ensurance/pharmacy/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	medicineCacheExpiry = 1 * time.Hour
	medicinesCacheKey   = "medicines_cache"
)

// MedicineRepository serves medicine reads through Redis, invalidating on
// every write. Search always hits the database since the filter space is
// unbounded.
type MedicineRepository struct {
	*CrudRepository[models.Medicine]
	cache *cache.Cache
}

func NewMedicineRepository(db *gorm.DB, c *cache.Cache) *MedicineRepository {
	return &MedicineRepository{
		CrudRepository: NewCrudRepository[models.Medicine](db, "id_medicine"),
		cache:          c,
	}
}

func (r *MedicineRepository) GetAll(ctx context.Context) ([]models.Medicine, error) {
	if cached, err := r.cache.Get(ctx, medicinesCacheKey); err == nil {
		var medicines []models.Medicine
		if err := json.Unmarshal([]byte(cached), &medicines); err == nil {
			return medicines, nil
		}
	} else if err != cache.Nil {
		log.Printf("Failed to get medicines from cache: %v", err)
	}

	medicines, err := r.CrudRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(medicines); err == nil {
		if err := r.cache.Set(ctx, medicinesCacheKey, payload, medicineCacheExpiry); err != nil {
			log.Printf("Failed to set medicines in cache: %v", err)
		}
	}
	return medicines, nil
}

func (r *MedicineRepository) Create(ctx context.Context, medicine *models.Medicine) error {
	if err := r.CrudRepository.Create(ctx, medicine); err != nil {
		return err
	}
	return r.invalidate(ctx)
}

func (r *MedicineRepository) Update(ctx context.Context, id int64, medicine *models.Medicine) error {
	if err := r.CrudRepository.Update(ctx, id, medicine); err != nil {
		return err
	}
	return r.invalidate(ctx)
}

func (r *MedicineRepository) Delete(ctx context.Context, id int64) error {
	if err := r.CrudRepository.Delete(ctx, id); err != nil {
		return err
	}
	return r.invalidate(ctx)
}

// Search filters medicines by partial name and by category name. Empty
// filters match everything.
func (r *MedicineRepository) Search(ctx context.Context, name, category string) ([]models.Medicine, error) {
	query := r.db.WithContext(ctx).Model(&models.Medicine{})
	if name != "" {
		query = query.Where("medicine.name LIKE ?", "%"+name+"%")
	}
	if category != "" {
		query = query.
			Joins("JOIN medicine_catsubcat mcs ON mcs.id_medicine = medicine.id_medicine").
			Joins("JOIN category c ON c.id_category = mcs.id_category").
			Where("c.name LIKE ?", "%"+category+"%").
			Distinct()
	}

	var medicines []models.Medicine
	if err := query.Find(&medicines).Error; err != nil {
		return nil, fmt.Errorf("failed to search medicines: %w", err)
	}
	return medicines, nil
}

func (r *MedicineRepository) invalidate(ctx context.Context) error {
	if err := r.cache.Delete(ctx, medicinesCacheKey); err != nil {
		return fmt.Errorf("failed to delete medicines cache: %w", err)
	}
	return nil
}

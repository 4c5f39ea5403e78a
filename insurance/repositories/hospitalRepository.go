package repositories

import (
	"Ensurance/cache"
	"Ensurance/insurance/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	hospitalCacheExpiry  = 1 * time.Hour
	hospitalsCacheKey    = "hospitals_cache"
	hospitalCachePattern = "hospital_cache:*"
)

// HospitalRepository serves hospital reads through Redis, invalidating on
// every write.
type HospitalRepository struct {
	*CrudRepository[models.Hospital]
	cache *cache.Cache
}

func NewHospitalRepository(db *gorm.DB, c *cache.Cache) *HospitalRepository {
	return &HospitalRepository{
		CrudRepository: NewCrudRepository[models.Hospital](db, "id_hospital"),
		cache:          c,
	}
}

func (r *HospitalRepository) GetByID(ctx context.Context, id int64) (*models.Hospital, error) {
	cacheKey := hospitalCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var hospital models.Hospital
		if err := json.Unmarshal([]byte(cached), &hospital); err == nil {
			return &hospital, nil
		}
	} else if err != cache.Nil {
		log.Printf("Failed to get hospital from cache: %v", err)
	}

	hospital, err := r.CrudRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(hospital); err == nil {
		if err := r.cache.Set(ctx, cacheKey, payload, hospitalCacheExpiry); err != nil {
			log.Printf("Failed to set hospital in cache: %v", err)
		}
	}
	return hospital, nil
}

func (r *HospitalRepository) GetAll(ctx context.Context) ([]models.Hospital, error) {
	if cached, err := r.cache.Get(ctx, hospitalsCacheKey); err == nil {
		var hospitals []models.Hospital
		if err := json.Unmarshal([]byte(cached), &hospitals); err == nil {
			return hospitals, nil
		}
	} else if err != cache.Nil {
		log.Printf("Failed to get hospitals from cache: %v", err)
	}

	hospitals, err := r.CrudRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(hospitals); err == nil {
		if err := r.cache.Set(ctx, hospitalsCacheKey, payload, hospitalCacheExpiry); err != nil {
			log.Printf("Failed to set hospitals in cache: %v", err)
		}
	}
	return hospitals, nil
}

func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	if err := r.CrudRepository.Create(ctx, hospital); err != nil {
		return err
	}
	return r.invalidate(ctx, hospital.IDHospital)
}

func (r *HospitalRepository) Update(ctx context.Context, id int64, hospital *models.Hospital) error {
	if err := r.CrudRepository.Update(ctx, id, hospital); err != nil {
		return err
	}
	return r.invalidate(ctx, id)
}

func (r *HospitalRepository) invalidate(ctx context.Context, id int64) error {
	if err := r.cache.Delete(ctx, hospitalCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete hospital cache: %w", err)
	}
	return r.cache.Delete(ctx, hospitalsCacheKey)
}

func hospitalCacheKey(id int64) string {
	return fmt.Sprintf("hospital_cache:%d", id)
}

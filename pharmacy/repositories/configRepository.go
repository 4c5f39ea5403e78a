package repositories

import (
	"Ensurance/pharmacy/models"
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// ConfigRepository reads and updates system_config rows.
type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) GetByKey(ctx context.Context, key string) (*models.SystemConfig, error) {
	var cfg models.SystemConfig
	err := r.db.WithContext(ctx).First(&cfg, "config_key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get config %q: %w", key, err)
	}
	return &cfg, nil
}

// MinPrescriptionAmount returns the configured minimum, falling back to
// the default when the row is missing or unparseable.
func (r *ConfigRepository) MinPrescriptionAmount(ctx context.Context) float64 {
	cfg, err := r.GetByKey(ctx, models.MinPrescriptionAmountKey)
	if err != nil {
		return models.DefaultMinPrescriptionAmount
	}
	value, err := strconv.ParseFloat(cfg.ConfigValue, 64)
	if err != nil {
		return models.DefaultMinPrescriptionAmount
	}
	return value
}

func (r *ConfigRepository) Upsert(ctx context.Context, cfg *models.SystemConfig) error {
	existing, err := r.GetByKey(ctx, cfg.ConfigKey)
	if errors.Is(err, ErrNotFound) {
		if err := r.db.WithContext(ctx).Create(cfg).Error; err != nil {
			return fmt.Errorf("failed to create config %q: %w", cfg.ConfigKey, err)
		}
		return nil
	}
	if err != nil {
		return err
	}

	existing.ConfigValue = cfg.ConfigValue
	if cfg.Description != "" {
		existing.Description = cfg.Description
	}
	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return fmt.Errorf("failed to update config %q: %w", cfg.ConfigKey, err)
	}
	*cfg = *existing
	return nil
}

package repositories

import (
	"Ensurance/insurance/models"
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// ConfigRepository manages the configurable prescription amount and the
// generic system configuration rows.
type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// CurrentAmount returns the active configurable amount, falling back to
// the seeded default when the table is empty.
func (r *ConfigRepository) CurrentAmount(ctx context.Context) (*models.ConfigurableAmount, error) {
	var amount models.ConfigurableAmount
	err := r.db.WithContext(ctx).Order("id_configurable_amount").First(&amount).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ConfigurableAmount{PrescriptionAmount: models.DefaultPrescriptionAmount}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get configurable amount: %w", err)
	}
	return &amount, nil
}

// UpdateAmount replaces the active configurable amount.
func (r *ConfigRepository) UpdateAmount(ctx context.Context, value float64) (*models.ConfigurableAmount, error) {
	amount, err := r.CurrentAmount(ctx)
	if err != nil {
		return nil, err
	}
	amount.PrescriptionAmount = value
	if err := r.db.WithContext(ctx).Save(amount).Error; err != nil {
		return nil, fmt.Errorf("failed to update configurable amount: %w", err)
	}
	return amount, nil
}

// ConfigValueAsFloat returns the value of a system configuration key as a
// float, or the given default when the key is absent or malformed.
func (r *ConfigRepository) ConfigValueAsFloat(ctx context.Context, key string, defaultValue float64) float64 {
	var config models.SystemConfig
	err := r.db.WithContext(ctx).First(&config, "config_key = ?", key).Error
	if err != nil {
		return defaultValue
	}
	value, err := strconv.ParseFloat(config.ConfigValue, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

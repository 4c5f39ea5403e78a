package repositories

import (
	"Ensurance/pharmacy/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ServiceApprovalRepository stores insurance approvals for pharmacy
// services and looks them up by code or by user.
type ServiceApprovalRepository struct {
	db *gorm.DB
}

func NewServiceApprovalRepository(db *gorm.DB) *ServiceApprovalRepository {
	return &ServiceApprovalRepository{db: db}
}

func (r *ServiceApprovalRepository) Create(ctx context.Context, approval *models.ServiceApproval) error {
	if err := r.db.WithContext(ctx).Omit("User", "Hospital").Create(approval).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("failed to create service approval: %w", ErrConflict)
		}
		return fmt.Errorf("failed to create service approval: %w", err)
	}
	return nil
}

// Save persists state transitions made by the approval workflow.
func (r *ServiceApprovalRepository) Save(ctx context.Context, approval *models.ServiceApproval) error {
	if err := r.db.WithContext(ctx).Omit("User", "Hospital").Save(approval).Error; err != nil {
		return fmt.Errorf("failed to save service approval: %w", err)
	}
	return nil
}

func (r *ServiceApprovalRepository) GetByCode(ctx context.Context, code string) (*models.ServiceApproval, error) {
	var approval models.ServiceApproval
	err := r.db.WithContext(ctx).Preload("User").Preload("Hospital").
		First(&approval, "approval_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service approval by code: %w", err)
	}
	return &approval, nil
}

func (r *ServiceApprovalRepository) GetByUser(ctx context.Context, userID int64) ([]models.ServiceApproval, error) {
	var approvals []models.ServiceApproval
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).Order("created_at DESC").Find(&approvals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get service approvals by user: %w", err)
	}
	return approvals, nil
}

func (r *ServiceApprovalRepository) GetAll(ctx context.Context) ([]models.ServiceApproval, error) {
	var approvals []models.ServiceApproval
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&approvals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all service approvals: %w", err)
	}
	return approvals, nil
}

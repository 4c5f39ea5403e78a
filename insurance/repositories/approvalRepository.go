package repositories

import (
	"Ensurance/insurance/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// PrescriptionApprovalRepository stores the outcomes of prescription
// approval requests.
type PrescriptionApprovalRepository struct {
	db *gorm.DB
}

func NewPrescriptionApprovalRepository(db *gorm.DB) *PrescriptionApprovalRepository {
	return &PrescriptionApprovalRepository{db: db}
}

func (r *PrescriptionApprovalRepository) Save(ctx context.Context, approval *models.PrescriptionApproval) error {
	if err := r.db.WithContext(ctx).Save(approval).Error; err != nil {
		return fmt.Errorf("failed to save prescription approval: %w", err)
	}
	return nil
}

func (r *PrescriptionApprovalRepository) FindAll(ctx context.Context) ([]models.PrescriptionApproval, error) {
	var approvals []models.PrescriptionApproval
	err := r.db.WithContext(ctx).Order("approval_date DESC").Find(&approvals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get prescription approvals: %w", err)
	}
	return approvals, nil
}

func (r *PrescriptionApprovalRepository) FindByUserID(ctx context.Context, userID int64) ([]models.PrescriptionApproval, error) {
	var approvals []models.PrescriptionApproval
	err := r.db.WithContext(ctx).
		Where("id_user = ?", userID).
		Order("approval_date DESC").
		Find(&approvals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get prescription approvals by user: %w", err)
	}
	return approvals, nil
}

// ServiceApprovalRepository stores hospital service approvals and feeds
// the dashboard aggregation.
type ServiceApprovalRepository struct {
	*CrudRepository[models.ServiceApproval]
	db *gorm.DB
}

func NewServiceApprovalRepository(db *gorm.DB) *ServiceApprovalRepository {
	return &ServiceApprovalRepository{
		CrudRepository: NewCrudRepository[models.ServiceApproval](db, "id_approval"),
		db:             db,
	}
}

// CountByStatus returns the number of approvals per status.
func (r *ServiceApprovalRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&models.ServiceApproval{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count approvals by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Totals returns the summed covered and patient amounts across approvals.
func (r *ServiceApprovalRepository) Totals(ctx context.Context) (covered float64, patient float64, err error) {
	type sums struct {
		Covered float64
		Patient float64
	}
	var row sums
	err = r.db.WithContext(ctx).Model(&models.ServiceApproval{}).
		Select("coalesce(sum(covered_amount),0) as covered, coalesce(sum(patient_amount),0) as patient").
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum approval amounts: %w", err)
	}
	return row.Covered, row.Patient, nil
}

// Recent returns the latest approvals for the dashboard, newest first.
func (r *ServiceApprovalRepository) Recent(ctx context.Context, limit int) ([]models.ServiceApproval, error) {
	var approvals []models.ServiceApproval
	err := r.db.WithContext(ctx).
		Order("approval_date DESC").
		Limit(limit).
		Find(&approvals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent approvals: %w", err)
	}
	return approvals, nil
}

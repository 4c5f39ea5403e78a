package repositories

import (
	"Ensurance/insurance/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// MedicinePresRepository manages the prescription/medicine join table.
type MedicinePresRepository struct {
	db *gorm.DB
}

func NewMedicinePresRepository(db *gorm.DB) *MedicinePresRepository {
	return &MedicinePresRepository{db: db}
}

func (r *MedicinePresRepository) Create(ctx context.Context, record *models.MedicinePres) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("failed to create medicine_pres: %w", ErrConflict)
		}
		return fmt.Errorf("failed to create medicine_pres: %w", err)
	}
	return nil
}

func (r *MedicinePresRepository) GetAll(ctx context.Context) ([]models.MedicinePres, error) {
	var records []models.MedicinePres
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all medicine_pres: %w", err)
	}
	return records, nil
}

func (r *MedicinePresRepository) GetByPrescription(ctx context.Context, prescriptionID int64) ([]models.MedicinePres, error) {
	var records []models.MedicinePres
	err := r.db.WithContext(ctx).Where("id_prescription = ?", prescriptionID).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get medicine_pres by prescription: %w", err)
	}
	return records, nil
}

// ServiceCategoryRepository manages the service/category join table.
type ServiceCategoryRepository struct {
	db *gorm.DB
}

func NewServiceCategoryRepository(db *gorm.DB) *ServiceCategoryRepository {
	return &ServiceCategoryRepository{db: db}
}

func (r *ServiceCategoryRepository) Create(ctx context.Context, record *models.ServiceCategory) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("failed to create service_category: %w", ErrConflict)
		}
		return fmt.Errorf("failed to create service_category: %w", err)
	}
	return nil
}

func (r *ServiceCategoryRepository) GetAll(ctx context.Context) ([]models.ServiceCategory, error) {
	var records []models.ServiceCategory
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all service_category: %w", err)
	}
	return records, nil
}

func (r *ServiceCategoryRepository) Get(ctx context.Context, serviceID, categoryID int64) (*models.ServiceCategory, error) {
	var record models.ServiceCategory
	err := r.db.WithContext(ctx).
		First(&record, "id_service = ? AND id_category = ?", serviceID, categoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service_category: %w", err)
	}
	return &record, nil
}

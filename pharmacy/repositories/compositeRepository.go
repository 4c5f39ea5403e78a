package repositories

import (
	"Ensurance/pharmacy/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// BillMedicineRepository manages bill line items.
type BillMedicineRepository struct {
	db *gorm.DB
}

func NewBillMedicineRepository(db *gorm.DB) *BillMedicineRepository {
	return &BillMedicineRepository{db: db}
}

func (r *BillMedicineRepository) Create(ctx context.Context, record *models.BillMedicine) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("failed to create bill_medicine: %w", ErrConflict)
		}
		return fmt.Errorf("failed to create bill_medicine: %w", err)
	}
	return nil
}

func (r *BillMedicineRepository) GetAll(ctx context.Context) ([]models.BillMedicine, error) {
	var records []models.BillMedicine
	if err := r.db.WithContext(ctx).Preload("Medicine").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all bill_medicine: %w", err)
	}
	return records, nil
}

func (r *BillMedicineRepository) GetByBill(ctx context.Context, billID int64) ([]models.BillMedicine, error) {
	var records []models.BillMedicine
	err := r.db.WithContext(ctx).Preload("Medicine").
		Where("id_bill = ?", billID).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get bill_medicine by bill: %w", err)
	}
	return records, nil
}

// OrderMedicineRepository manages order line items.
type OrderMedicineRepository struct {
	db *gorm.DB
}

func NewOrderMedicineRepository(db *gorm.DB) *OrderMedicineRepository {
	return &OrderMedicineRepository{db: db}
}

func (r *OrderMedicineRepository) Create(ctx context.Context, record *models.OrderMedicine) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("failed to create order_medicine: %w", ErrConflict)
		}
		return fmt.Errorf("failed to create order_medicine: %w", err)
	}
	return nil
}

func (r *OrderMedicineRepository) GetAll(ctx context.Context) ([]models.OrderMedicine, error) {
	var records []models.OrderMedicine
	if err := r.db.WithContext(ctx).Preload("Medicine").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all order_medicine: %w", err)
	}
	return records, nil
}

func (r *OrderMedicineRepository) GetByOrder(ctx context.Context, orderID int64) ([]models.OrderMedicine, error) {
	var records []models.OrderMedicine
	err := r.db.WithContext(ctx).Preload("Medicine").
		Where("id_order = ?", orderID).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order_medicine by order: %w", err)
	}
	return records, nil
}

// PrescriptionMedicineRepository manages prescription line items.
type PrescriptionMedicineRepository struct {
	db *gorm.DB
}

func NewPrescriptionMedicineRepository(db *gorm.DB) *PrescriptionMedicineRepository {
	return &PrescriptionMedicineRepository{db: db}
}

func (r *PrescriptionMedicineRepository) Create(ctx context.Context, record *models.PrescriptionMedicine) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("failed to create prescription_medicine: %w", ErrConflict)
		}
		return fmt.Errorf("failed to create prescription_medicine: %w", err)
	}
	return nil
}

func (r *PrescriptionMedicineRepository) GetAll(ctx context.Context) ([]models.PrescriptionMedicine, error) {
	var records []models.PrescriptionMedicine
	if err := r.db.WithContext(ctx).Preload("Medicine").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all prescription_medicine: %w", err)
	}
	return records, nil
}

func (r *PrescriptionMedicineRepository) GetByPrescription(ctx context.Context, prescriptionID int64) ([]models.PrescriptionMedicine, error) {
	var records []models.PrescriptionMedicine
	err := r.db.WithContext(ctx).Preload("Medicine").
		Where("id_prescription = ?", prescriptionID).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get prescription_medicine by prescription: %w", err)
	}
	return records, nil
}

// MedicineCatSubcatRepository manages medicine classification rows.
type MedicineCatSubcatRepository struct {
	db *gorm.DB
}

func NewMedicineCatSubcatRepository(db *gorm.DB) *MedicineCatSubcatRepository {
	return &MedicineCatSubcatRepository{db: db}
}

func (r *MedicineCatSubcatRepository) Create(ctx context.Context, record *models.MedicineCatSubcat) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("failed to create medicine_catsubcat: %w", ErrConflict)
		}
		return fmt.Errorf("failed to create medicine_catsubcat: %w", err)
	}
	return nil
}

func (r *MedicineCatSubcatRepository) GetAll(ctx context.Context) ([]models.MedicineCatSubcat, error) {
	var records []models.MedicineCatSubcat
	err := r.db.WithContext(ctx).
		Preload("Medicine").Preload("Category").Preload("Subcategory").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all medicine_catsubcat: %w", err)
	}
	return records, nil
}

func (r *MedicineCatSubcatRepository) GetByMedicine(ctx context.Context, medicineID int64) ([]models.MedicineCatSubcat, error) {
	var records []models.MedicineCatSubcat
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Subcategory").
		Where("id_medicine = ?", medicineID).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get medicine_catsubcat by medicine: %w", err)
	}
	return records, nil
}

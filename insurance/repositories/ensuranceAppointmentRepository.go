package repositories

import (
	"Ensurance/insurance/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// EnsuranceAppointmentRepository adds lookups by hospital appointment id
// and user on top of the plain storage operations.
type EnsuranceAppointmentRepository struct {
	*CrudRepository[models.EnsuranceAppointment]
	db *gorm.DB
}

func NewEnsuranceAppointmentRepository(db *gorm.DB) *EnsuranceAppointmentRepository {
	return &EnsuranceAppointmentRepository{
		CrudRepository: NewCrudRepository[models.EnsuranceAppointment](db, "id_appointment"),
		db:             db,
	}
}

func (r *EnsuranceAppointmentRepository) GetByHospitalAppointmentID(ctx context.Context, hospitalAppointmentID string) (*models.EnsuranceAppointment, error) {
	var appointment models.EnsuranceAppointment
	err := r.db.WithContext(ctx).
		First(&appointment, "hospital_appointment_id = ?", hospitalAppointmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment by hospital id: %w", err)
	}
	return &appointment, nil
}

func (r *EnsuranceAppointmentRepository) GetByUser(ctx context.Context, userID int64) ([]models.EnsuranceAppointment, error) {
	var appointments []models.EnsuranceAppointment
	err := r.db.WithContext(ctx).Where("id_user = ?", userID).Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments by user: %w", err)
	}
	return appointments, nil
}

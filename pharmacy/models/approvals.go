package models

import (
	"time"

	"gorm.io/gorm"
)

// Service approval lifecycle states.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCompleted = "COMPLETED"
)

// MinPrescriptionAmountKey names the config row holding the minimum
// total a prescription must reach before it can be attached.
const MinPrescriptionAmountKey = "MIN_PRESCRIPTION_AMOUNT"

// DefaultMinPrescriptionAmount applies when no config row exists.
const DefaultMinPrescriptionAmount = 250.00

// ServiceApproval records the insurance decision for a pharmacy service,
// including the coverage split once approved.
type ServiceApproval struct {
	IDApproval         int64      `gorm:"primaryKey;autoIncrement;column:id_approval" json:"idApproval"`
	ApprovalCode       string     `gorm:"column:approval_code;unique;not null" json:"approvalCode"`
	UserID             int64      `gorm:"column:user_id;not null" json:"userId"`
	User               *User      `gorm:"foreignKey:UserID;references:IDUser" json:"user,omitempty"`
	HospitalID         *int64     `gorm:"column:hospital_id" json:"hospitalId,omitempty"`
	Hospital           *Hospital  `gorm:"foreignKey:HospitalID;references:IDHospital" json:"hospital,omitempty"`
	ServiceID          string     `gorm:"column:service_id" json:"serviceId"`
	ServiceName        string     `gorm:"column:service_name" json:"serviceName"`
	ServiceDescription string     `gorm:"column:service_description" json:"serviceDescription"`
	ServiceCost        float64    `gorm:"column:service_cost" json:"serviceCost"`
	CoveredAmount      float64    `gorm:"column:covered_amount" json:"coveredAmount"`
	PatientAmount      float64    `gorm:"column:patient_amount" json:"patientAmount"`
	Status             string     `gorm:"column:status;not null" json:"status"`
	RejectionReason    string     `gorm:"column:rejection_reason" json:"rejectionReason,omitempty"`
	PrescriptionID     *int64     `gorm:"column:prescription_id" json:"prescriptionId,omitempty"`
	PrescriptionTotal  *float64   `gorm:"column:prescription_total" json:"prescriptionTotal,omitempty"`
	ApprovalDate       *time.Time `gorm:"column:approval_date" json:"approvalDate,omitempty"`
	CompletedDate      *time.Time `gorm:"column:completed_date" json:"completedDate,omitempty"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ServiceApproval) TableName() string {
	return "service_approvals"
}

// SystemConfig holds tunable runtime values keyed by name.
type SystemConfig struct {
	IDConfig    int64     `gorm:"primaryKey;autoIncrement;column:id_config" json:"idConfig"`
	ConfigKey   string    `gorm:"column:config_key;unique;not null" json:"configKey"`
	ConfigValue string    `gorm:"column:config_value;not null" json:"configValue"`
	Description string    `gorm:"column:description" json:"description"`
	LastUpdated time.Time `gorm:"column:last_updated;autoUpdateTime" json:"lastUpdated"`
}

func (SystemConfig) TableName() string {
	return "system_config"
}

// AllModels lists every pharmacy model for migration.
func AllModels() []interface{} {
	return []interface{}{
		&Policy{},
		&User{},
		&Hospital{},
		&Category{},
		&Subcategory{},
		&Medicine{},
		&MedicineCatSubcat{},
		&Comments{},
		&Prescription{},
		&PrescriptionMedicine{},
		&Bill{},
		&BillMedicine{},
		&Orders{},
		&OrderMedicine{},
		&ServiceApproval{},
		&SystemConfig{},
	}
}

// SeedSystemConfig inserts the minimum prescription amount row when missing.
func SeedSystemConfig(db *gorm.DB) error {
	var count int64
	if err := db.Model(&SystemConfig{}).
		Where("config_key = ?", MinPrescriptionAmountKey).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&SystemConfig{
		ConfigKey:   MinPrescriptionAmountKey,
		ConfigValue: "250.00",
		Description: "Minimum prescription total required for insurance coverage",
	}).Error
}

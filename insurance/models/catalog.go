package models

import (
	"time"
)

// Category model, also used for subcategories.
type Category struct {
	IDCategory int64  `gorm:"primaryKey;autoIncrement;column:id_category" json:"idCategory"`
	Name       string `gorm:"column:name;not null" json:"name"`
	Enabled    int    `gorm:"column:enabled;not null;default:1" json:"enabled"`
}

func (Category) TableName() string {
	return "category"
}

// Service is a medical service offered by a hospital.
type Service struct {
	IDService     int64     `gorm:"primaryKey;autoIncrement;column:id_service" json:"idService"`
	IDHospital    *int64    `gorm:"column:id_hospital" json:"idHospital,omitempty"`
	Hospital      *Hospital `gorm:"foreignKey:IDHospital;references:IDHospital" json:"hospital,omitempty"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	Description   string    `gorm:"column:description" json:"description"`
	IDCategory    *int64    `gorm:"column:id_category" json:"idCategory,omitempty"`
	Category      *Category `gorm:"foreignKey:IDCategory;references:IDCategory" json:"category,omitempty"`
	IDSubcategory *int64    `gorm:"column:id_subcategory" json:"idSubcategory,omitempty"`
	Subcategory   *Category `gorm:"foreignKey:IDSubcategory;references:IDCategory" json:"subcategory,omitempty"`
	Cost          float64   `gorm:"column:cost" json:"cost"`
	Enabled       int       `gorm:"column:enabled;not null;default:1" json:"enabled"`
}

func (Service) TableName() string {
	return "service"
}

// ServiceCategory links services and categories through a composite key.
type ServiceCategory struct {
	IDService  int64 `gorm:"primaryKey;column:id_service" json:"idService"`
	IDCategory int64 `gorm:"primaryKey;column:id_category" json:"idCategory"`
}

func (ServiceCategory) TableName() string {
	return "service_category"
}

// InsuranceService is a service covered by the insurer, optionally mapped
// to an external system id.
type InsuranceService struct {
	IDInsuranceService int64     `gorm:"primaryKey;autoIncrement;column:id_insurance_service" json:"idInsuranceService"`
	Name               string    `gorm:"column:name;not null" json:"name"`
	Description        string    `gorm:"column:description" json:"description"`
	ExternalID         string    `gorm:"column:external_id" json:"externalId"`
	IDCategory         *int64    `gorm:"column:id_category" json:"idCategory,omitempty"`
	Category           *Category `gorm:"foreignKey:IDCategory;references:IDCategory" json:"category,omitempty"`
	IDSubcategory      *int64    `gorm:"column:id_subcategory" json:"idSubcategory,omitempty"`
	Subcategory        *Category `gorm:"foreignKey:IDSubcategory;references:IDCategory" json:"subcategory,omitempty"`
	Price              float64   `gorm:"column:price" json:"price"`
	CoveragePercentage int       `gorm:"column:coverage_percentage" json:"coveragePercentage"`
	Enabled            int       `gorm:"column:enabled;not null;default:1" json:"enabled"`
}

func (InsuranceService) TableName() string {
	return "insurance_service"
}

// HospitalInsuranceService approves an insurance service for a hospital.
type HospitalInsuranceService struct {
	IDHospitalService  int64             `gorm:"primaryKey;autoIncrement;column:id_hospital_service" json:"idHospitalService"`
	IDHospital         int64             `gorm:"column:id_hospital;not null;index" json:"idHospital"`
	Hospital           *Hospital         `gorm:"foreignKey:IDHospital;references:IDHospital" json:"hospital,omitempty"`
	IDInsuranceService int64             `gorm:"column:id_insurance_service;not null;index" json:"idInsuranceService"`
	InsuranceService   *InsuranceService `gorm:"foreignKey:IDInsuranceService;references:IDInsuranceService" json:"insuranceService,omitempty"`
	Approved           int               `gorm:"column:approved;not null;default:0" json:"approved"`
	ApprovalDate       *time.Time        `gorm:"column:approval_date" json:"approvalDate"`
	Notes              string            `gorm:"column:notes" json:"notes"`
}

func (HospitalInsuranceService) TableName() string {
	return "hospital_insurance_service"
}

package models

import (
	"time"
)

// Approval statuses shared by prescription and service approvals.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCompleted = "COMPLETED"
)

// PrescriptionApproval records the outcome of a prescription approval
// request, whether approved or rejected.
type PrescriptionApproval struct {
	IDApproval             int64     `gorm:"primaryKey;autoIncrement;column:id_approval" json:"idApproval"`
	AuthorizationNumber    string    `gorm:"column:authorization_number;unique;not null" json:"authorizationNumber"`
	IDUser                 int64     `gorm:"column:id_user;not null;index" json:"idUser"`
	PrescriptionIDHospital string    `gorm:"column:prescription_id_hospital" json:"prescriptionIdHospital"`
	PrescriptionDetails    string    `gorm:"column:prescription_details" json:"prescriptionDetails"`
	PrescriptionCost       float64   `gorm:"column:prescription_cost" json:"prescriptionCost"`
	ApprovalDate           time.Time `gorm:"column:approval_date;autoCreateTime" json:"approvalDate"`
	Status                 string    `gorm:"column:status;not null" json:"status"`
	RejectionReason        string    `gorm:"column:rejection_reason" json:"rejectionReason,omitempty"`
}

func (PrescriptionApproval) TableName() string {
	return "prescription_approval"
}

// ServiceApproval records a hospital service approval and its coverage
// split, later linked to a prescription once dispensed.
type ServiceApproval struct {
	ID                int64      `gorm:"primaryKey;autoIncrement;column:id_approval" json:"id"`
	ApprovalCode      string     `gorm:"column:approval_code;unique;not null;index" json:"approvalCode"`
	UserID            int64      `gorm:"column:id_user;not null;index" json:"userId"`
	HospitalID        int64      `gorm:"column:id_hospital;not null;index" json:"hospitalId"`
	ServiceID         string     `gorm:"column:service_id" json:"serviceId"`
	ServiceName       string     `gorm:"column:service_name" json:"serviceName"`
	ServiceCost       float64    `gorm:"column:service_cost" json:"serviceCost"`
	CoveredAmount     float64    `gorm:"column:covered_amount" json:"coveredAmount"`
	PatientAmount     float64    `gorm:"column:patient_amount" json:"patientAmount"`
	Status            string     `gorm:"column:status;not null" json:"status"`
	ApprovalDate      time.Time  `gorm:"column:approval_date;autoCreateTime" json:"approvalDate"`
	CompletedDate     *time.Time `gorm:"column:completed_date" json:"completedDate"`
	RejectionReason   string     `gorm:"column:rejection_reason" json:"rejectionReason,omitempty"`
	PrescriptionID    *int64     `gorm:"column:id_prescription" json:"prescriptionId,omitempty"`
	PrescriptionTotal *float64   `gorm:"column:prescription_total" json:"prescriptionTotal,omitempty"`
}

func (ServiceApproval) TableName() string {
	return "service_approval"
}

// AllModels lists every entity migrated at startup, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&Policy{},
		&User{},
		&Hospital{},
		&Pharmacy{},
		&Medicine{},
		&Prescription{},
		&MedicinePres{},
		&Appointment{},
		&AppointmentMade{},
		&EnsuranceAppointment{},
		&Category{},
		&Service{},
		&ServiceCategory{},
		&InsuranceService{},
		&HospitalInsuranceService{},
		&Transactions{},
		&TransactionPolicy{},
		&TotalHospital{},
		&TotalPharmacy{},
		&ConfigurableAmount{},
		&SystemConfig{},
		&PrescriptionApproval{},
		&ServiceApproval{},
	}
}

package models

import (
	"time"
)

// Hospital model. Port is the service port used when proxying requests
// to the hospital's own backend.
type Hospital struct {
	IDHospital int64  `gorm:"primaryKey;autoIncrement;column:id_hospital" json:"idHospital"`
	Name       string `gorm:"column:name;not null" json:"name"`
	Address    string `gorm:"column:address" json:"address"`
	Phone      int64  `gorm:"column:phone" json:"phone"`
	Email      string `gorm:"column:email" json:"email"`
	Enabled    int    `gorm:"column:enabled;not null;default:1" json:"enabled"`
	Port       string `gorm:"column:port" json:"port"`
}

func (Hospital) TableName() string {
	return "hospital"
}

// Pharmacy model
type Pharmacy struct {
	IDPharmacy int64  `gorm:"primaryKey;autoIncrement;column:id_pharmacy" json:"idPharmacy"`
	Name       string `gorm:"column:name;not null" json:"name"`
	Address    string `gorm:"column:address" json:"address"`
	Phone      int64  `gorm:"column:phone" json:"phone"`
	Email      string `gorm:"column:email" json:"email"`
	Enabled    int    `gorm:"column:enabled;not null;default:1" json:"enabled"`
}

func (Pharmacy) TableName() string {
	return "pharmacy"
}

// Medicine model
type Medicine struct {
	IDMedicine      int64     `gorm:"primaryKey;autoIncrement;column:id_medicine" json:"idMedicine"`
	Name            string    `gorm:"column:name;not null;index" json:"name"`
	Description     string    `gorm:"column:description" json:"description"`
	Price           float64   `gorm:"column:price;not null" json:"price"`
	IDPharmacy      *int64    `gorm:"column:id_pharmacy" json:"idPharmacy,omitempty"`
	Pharmacy        *Pharmacy `gorm:"foreignKey:IDPharmacy;references:IDPharmacy" json:"pharmacy,omitempty"`
	Enabled         int       `gorm:"column:enabled;not null;default:1" json:"enabled"`
	ActivePrinciple string    `gorm:"column:active_principle" json:"activePrinciple"`
	Presentation    string    `gorm:"column:presentation" json:"presentation"`
	Stock           int       `gorm:"column:stock" json:"stock"`
	Brand           string    `gorm:"column:brand" json:"brand"`
	Coverage        int       `gorm:"column:coverage" json:"coverage"`
}

func (Medicine) TableName() string {
	return "medicine"
}

// Prescription model
type Prescription struct {
	IDPrescription      int64      `gorm:"primaryKey;autoIncrement;column:id_prescription" json:"idPrescription"`
	IDHospital          *int64     `gorm:"column:id_hospital" json:"idHospital,omitempty"`
	Hospital            *Hospital  `gorm:"foreignKey:IDHospital;references:IDHospital" json:"hospital,omitempty"`
	IDUser              *int64     `gorm:"column:id_user" json:"idUser,omitempty"`
	User                *User      `gorm:"foreignKey:IDUser;references:IDUser" json:"user,omitempty"`
	IDMedicine          *int64     `gorm:"column:id_medicine" json:"idMedicine,omitempty"`
	Medicine            *Medicine  `gorm:"foreignKey:IDMedicine;references:IDMedicine" json:"medicine,omitempty"`
	IDPharmacy          *int64     `gorm:"column:id_pharmacy" json:"idPharmacy,omitempty"`
	Pharmacy            *Pharmacy  `gorm:"foreignKey:IDPharmacy;references:IDPharmacy" json:"pharmacy,omitempty"`
	PrescriptionDate    *time.Time `gorm:"column:prescription_date" json:"prescriptionDate"`
	Total               float64    `gorm:"column:total" json:"total"`
	Copay               float64    `gorm:"column:copay" json:"copay"`
	PrescriptionComment string     `gorm:"column:prescription_comment" json:"prescriptionComment"`
	Secured             int        `gorm:"column:secured" json:"secured"`
	Auth                string     `gorm:"column:auth" json:"auth"`
}

func (Prescription) TableName() string {
	return "prescription"
}

// MedicinePres ties a prescription to one of its medicines through a
// composite primary key.
type MedicinePres struct {
	IDPrescription int64 `gorm:"primaryKey;column:id_prescription" json:"idPrescription"`
	IDMedicine     int64 `gorm:"primaryKey;column:id_medicine" json:"idMedicine"`
}

func (MedicinePres) TableName() string {
	return "medicine_pres"
}

// Appointment model
type Appointment struct {
	IDAppointment   int64      `gorm:"primaryKey;autoIncrement;column:id_appointment" json:"idAppointment"`
	IDHospital      *int64     `gorm:"column:id_hospital" json:"idHospital,omitempty"`
	Hospital        *Hospital  `gorm:"foreignKey:IDHospital;references:IDHospital" json:"hospital,omitempty"`
	IDUser          *int64     `gorm:"column:id_user" json:"idUser,omitempty"`
	User            *User      `gorm:"foreignKey:IDUser;references:IDUser" json:"user,omitempty"`
	AppointmentDate *time.Time `gorm:"column:appointment_date" json:"appointmentDate"`
	Enabled         int        `gorm:"column:enabled;not null;default:1" json:"enabled"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// AppointmentMade records that a scheduled appointment took place.
type AppointmentMade struct {
	IDCita              int64      `gorm:"primaryKey;autoIncrement;column:id_cita" json:"idCita"`
	IDUser              int64      `gorm:"column:id_user;not null;index" json:"idUser"`
	AppointmentMadeDate *time.Time `gorm:"column:appointment_made_date" json:"appointmentMadeDate"`
}

func (AppointmentMade) TableName() string {
	return "appointment_made"
}

// EnsuranceAppointment mirrors an appointment created on a hospital's own
// system, keyed back to it by the hospital appointment id.
type EnsuranceAppointment struct {
	IDAppointment         int64      `gorm:"primaryKey;autoIncrement;column:id_appointment" json:"idAppointment"`
	HospitalAppointmentID string     `gorm:"column:hospital_appointment_id;not null;index" json:"hospitalAppointmentId"`
	IDUser                int64      `gorm:"column:id_user;not null;index" json:"idUser"`
	AppointmentDate       *time.Time `gorm:"column:appointment_date" json:"appointmentDate"`
	DoctorName            string     `gorm:"column:doctor_name" json:"doctorName"`
	Reason                string     `gorm:"column:reason" json:"reason"`
}

func (EnsuranceAppointment) TableName() string {
	return "ensurance_appointment"
}

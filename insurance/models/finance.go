package models

import (
	"time"

	"gorm.io/gorm"
)

// Transactions records a hospital visit settlement for a user.
type Transactions struct {
	IDTransaction      int64      `gorm:"primaryKey;autoIncrement;column:id_transaction" json:"idTransaction"`
	IDUser             *int64     `gorm:"column:id_user" json:"idUser,omitempty"`
	User               *User      `gorm:"foreignKey:IDUser;references:IDUser" json:"user,omitempty"`
	IDHospital         *int64     `gorm:"column:id_hospital" json:"idHospital,omitempty"`
	Hospital           *Hospital  `gorm:"foreignKey:IDHospital;references:IDHospital" json:"hospital,omitempty"`
	TransDate          *time.Time `gorm:"column:trans_date" json:"transDate"`
	Total              float64    `gorm:"column:total" json:"total"`
	Copay              float64    `gorm:"column:copay" json:"copay"`
	TransactionComment string     `gorm:"column:transaction_comment" json:"transactionComment"`
	Result             string     `gorm:"column:result" json:"result"`
	Covered            int        `gorm:"column:covered" json:"covered"`
	Auth               string     `gorm:"column:auth" json:"auth"`
}

func (Transactions) TableName() string {
	return "transactions"
}

// TransactionPolicy records a policy payment made by a user.
type TransactionPolicy struct {
	IDTransactionPolicy int64      `gorm:"primaryKey;autoIncrement;column:id_transaction_policy" json:"idTransactionPolicy"`
	IDPolicy            *int64     `gorm:"column:id_policy" json:"idPolicy,omitempty"`
	Policy              *Policy    `gorm:"foreignKey:IDPolicy;references:IDPolicy" json:"policy,omitempty"`
	IDUser              *int64     `gorm:"column:id_user" json:"idUser,omitempty"`
	User                *User      `gorm:"foreignKey:IDUser;references:IDUser" json:"user,omitempty"`
	PayDate             *time.Time `gorm:"column:pay_date" json:"payDate"`
	Total               float64    `gorm:"column:total" json:"total"`
}

func (TransactionPolicy) TableName() string {
	return "transaction_policy"
}

// TotalHospital aggregates amounts owed to a hospital on a given date.
type TotalHospital struct {
	IDTotalHospital int64      `gorm:"primaryKey;autoIncrement;column:id_total_hospital" json:"idTotalHospital"`
	IDHospital      int64      `gorm:"column:id_hospital;not null;index" json:"idHospital"`
	Hospital        *Hospital  `gorm:"foreignKey:IDHospital;references:IDHospital" json:"hospital,omitempty"`
	TotalDate       *time.Time `gorm:"column:total_date" json:"totalDate"`
	Total           float64    `gorm:"column:total" json:"total"`
}

func (TotalHospital) TableName() string {
	return "total_hospital"
}

// TotalPharmacy aggregates amounts owed to a pharmacy on a given date.
type TotalPharmacy struct {
	IDTotalPharmacy int64      `gorm:"primaryKey;autoIncrement;column:id_total_pharmacy" json:"idTotalPharmacy"`
	IDPharmacy      int64      `gorm:"column:id_pharmacy;not null;index" json:"idPharmacy"`
	Pharmacy        *Pharmacy  `gorm:"foreignKey:IDPharmacy;references:IDPharmacy" json:"pharmacy,omitempty"`
	TotalDate       *time.Time `gorm:"column:total_date" json:"totalDate"`
	Total           float64    `gorm:"column:total" json:"total"`
}

func (TotalPharmacy) TableName() string {
	return "total_pharmacy"
}

// ConfigurableAmount holds the minimum prescription amount required for
// an approval to pass the threshold check.
type ConfigurableAmount struct {
	IDConfigurableAmount int64   `gorm:"primaryKey;autoIncrement;column:id_configurable_amount" json:"idConfigurableAmount"`
	PrescriptionAmount   float64 `gorm:"column:prescription_amount;not null" json:"prescriptionAmount"`
}

func (ConfigurableAmount) TableName() string {
	return "configurable_amount"
}

// DefaultPrescriptionAmount is seeded when no configurable amount exists.
const DefaultPrescriptionAmount = 250.00

// SystemConfig is a generic key/value configuration row.
type SystemConfig struct {
	IDConfig          int64     `gorm:"primaryKey;autoIncrement;column:id_config" json:"idConfig"`
	ConfigKey         string    `gorm:"column:config_key;unique;not null;index" json:"configKey"`
	ConfigValue       string    `gorm:"column:config_value;not null" json:"configValue"`
	ConfigDescription string    `gorm:"column:config_description" json:"configDescription"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (SystemConfig) TableName() string {
	return "system_config"
}

// SeedConfigurableAmount inserts the default minimum prescription amount
// when the table is empty.
func SeedConfigurableAmount(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ConfigurableAmount{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(&ConfigurableAmount{PrescriptionAmount: DefaultPrescriptionAmount}).Error
	})
}

package models

import (
	"time"
)

// Policy model
type Policy struct {
	IDPolicy   int64   `gorm:"primaryKey;autoIncrement;column:id_policy" json:"idPolicy"`
	Percentage float64 `gorm:"column:percentage;not null" json:"percentage"`
	Enabled    int     `gorm:"column:enabled;not null;default:1" json:"enabled"`
}

func (Policy) TableName() string {
	return "policy"
}

// User model. Email is unique; CUI is the national id kept as text here
// since hospital systems send it with leading zeros.
type User struct {
	IDUser    int64      `gorm:"primaryKey;autoIncrement;column:id_user" json:"idUser"`
	Name      string     `gorm:"column:name;not null" json:"name"`
	CUI       string     `gorm:"column:cui;unique;not null;index" json:"cui"`
	Phone     string     `gorm:"column:phone" json:"phone"`
	Email     string     `gorm:"column:email;unique;not null;index" json:"email"`
	Address   string     `gorm:"column:address" json:"address"`
	BirthDate *time.Time `gorm:"column:birth_date" json:"birthDate"`
	Role      string     `gorm:"column:role" json:"role"`
	Enabled   int        `gorm:"column:enabled;not null;default:1" json:"enabled"`
	Password  string     `gorm:"column:password;not null" json:"password,omitempty"`
	IDPolicy  *int64     `gorm:"column:id_policy" json:"idPolicy,omitempty"`
	Policy    *Policy    `gorm:"foreignKey:IDPolicy;references:IDPolicy" json:"policy,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Sanitized returns a copy safe to serialize back to clients.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Hospital model
type Hospital struct {
	IDHospital int64  `gorm:"primaryKey;autoIncrement;column:id_hospital" json:"idHospital"`
	Name       string `gorm:"column:name;not null" json:"name"`
	Phone      string `gorm:"column:phone" json:"phone"`
	Email      string `gorm:"column:email" json:"email"`
	Address    string `gorm:"column:address" json:"address"`
	Enabled    int    `gorm:"column:enabled;not null;default:1" json:"enabled"`
}

func (Hospital) TableName() string {
	return "hospital"
}

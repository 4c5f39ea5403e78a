package models

import (
	"time"
)

// Policy model
type Policy struct {
	IDPolicy     int64      `gorm:"primaryKey;autoIncrement;column:id_policy" json:"idPolicy"`
	Percentage   float64    `gorm:"column:percentage;not null" json:"percentage"`
	CreationDate *time.Time `gorm:"column:creation_date" json:"creationDate"`
	ExpDate      *time.Time `gorm:"column:exp_date" json:"expDate"`
	Cost         float64    `gorm:"column:cost" json:"cost"`
	Enabled      int        `gorm:"column:enabled;not null;default:1" json:"enabled"`
}

func (Policy) TableName() string {
	return "policy"
}

// User model. Email and CUI are unique; a user without paid service
// carries neither policy nor expiration date.
type User struct {
	IDUser         int64      `gorm:"primaryKey;autoIncrement;column:id_user" json:"idUser"`
	Name           string     `gorm:"column:name;not null" json:"name"`
	CUI            int64      `gorm:"column:cui;unique;not null;index" json:"cui"`
	Phone          string     `gorm:"column:phone" json:"phone"`
	Email          string     `gorm:"column:email;unique;not null;index" json:"email"`
	Address        string     `gorm:"column:address" json:"address"`
	BirthDate      *time.Time `gorm:"column:birth_date" json:"birthDate"`
	Role           string     `gorm:"column:role" json:"role"`
	IDPolicy       *int64     `gorm:"column:id_policy" json:"idPolicy,omitempty"`
	Policy         *Policy    `gorm:"foreignKey:IDPolicy;references:IDPolicy" json:"policy,omitempty"`
	Enabled        int        `gorm:"column:enabled;not null;default:1" json:"enabled"`
	Password       string     `gorm:"column:password;not null" json:"password,omitempty"`
	PaidService    *bool      `gorm:"column:paid_service" json:"paidService"`
	ExpirationDate *time.Time `gorm:"column:expiration_date" json:"expirationDate"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// Sanitized returns a copy safe to serialize back to clients.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PatientCodePrefix   = "PAT"
	PatientCodeSequence = "patient_code"
)

// Patient is the profile owned one-to-one by a patient account. Code and
// Age are assigned once at creation and never recomputed.
type Patient struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AccountID   uint      `gorm:"unique" json:"account_id"`
	Account     Account   `gorm:"foreignKey:AccountID" json:"user"`
	Phone       string    `gorm:"unique" json:"phone"`
	Photo       string    `json:"patient_photo"`
	Address     string    `json:"address"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Code        string    `gorm:"unique" json:"patient_code"`
	Age         int       `json:"patient_age"`
}

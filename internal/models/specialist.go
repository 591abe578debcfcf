package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SpecialistCodePrefix   = "SPEC"
	SpecialistCodeSequence = "specialist_code"
)

// Specialist mirrors Patient but draws its code from an independent
// sequence with the SPEC prefix.
type Specialist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AccountID   uint      `gorm:"unique" json:"account_id"`
	Account     Account   `gorm:"foreignKey:AccountID" json:"user"`
	Phone       string    `gorm:"unique" json:"phone"`
	Photo       string    `json:"specialist_photo"`
	Address     string    `json:"address"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Code        string    `gorm:"unique" json:"specialist_code"`
	Age         int       `json:"specialist_age"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Prescription struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AuthorID      uint   `json:"specialist_id"`
	Patient       string `json:"patient"`
	Feelings      string `json:"feelings"`
	Ailments      string `json:"ailments"`
	Prescriptions string `json:"prescriptions"`
}

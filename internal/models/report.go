package models

import (
	"time"

	"gorm.io/gorm"
)

// Report references its patient by code string rather than foreign key;
// the code is validated for existence at write time only.
type Report struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `json:"name"`
	AuthorID    uint   `json:"specialist_id"`
	Patient     string `json:"patient"`
	Ailment     string `json:"ailment"`
	Description string `json:"description"`
}

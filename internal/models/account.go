package models

import (
	"time"

	"gorm.io/gorm"
)

// Account is the authentication identity behind every patient, specialist
// and admin. Role flags mirror the provisioning path that created the
// account; only one of the patient/specialist flags is ever set.
type Account struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email     string `gorm:"unique" json:"email"`
	Username  string `gorm:"unique" json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"-"`

	IsActive     bool `gorm:"default:true" json:"is_active"`
	IsAdmin      bool `gorm:"default:false" json:"is_admin"`
	IsStaff      bool `gorm:"default:false" json:"is_staff"`
	IsSuperuser  bool `gorm:"default:false" json:"is_superuser"`
	IsPatient    bool `gorm:"default:false" json:"is_patient"`
	IsSpecialist bool `gorm:"default:false" json:"is_specialist"`

	LastLogin *time.Time `json:"last_login"`
}

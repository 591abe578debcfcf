package models

import "strings"

// Specialization is an admin-managed vocabulary entry for what a
// specialist practices.
type Specialization struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique" json:"name"`
}

// Ailment is an admin-managed vocabulary entry referenced by reports and
// prescriptions.
type Ailment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique" json:"name"`
}

// SpecializationNames is the accepted specialization vocabulary.
var SpecializationNames = []string{"nurse", "dentist", "doctor"}

// AilmentNames is the accepted ailment vocabulary, shared by the ailment,
// report and prescription paths.
var AilmentNames = []string{"cardiovascular", "neurological", "respiratory", "orthopedic", "mental"}

func containsFold(names []string, name string) bool {
	lowered := strings.ToLower(name)
	for _, n := range names {
		if n == lowered {
			return true
		}
	}
	return false
}

// IsValidSpecialization reports whether name is in the specialization
// vocabulary, case-insensitively.
func IsValidSpecialization(name string) bool {
	return containsFold(SpecializationNames, name)
}

// IsValidAilment reports whether name is in the ailment vocabulary,
// case-insensitively.
func IsValidAilment(name string) bool {
	return containsFold(AilmentNames, name)
}

package utils

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinicare/internal/models"
)

// SeedCatalog inserts the fixed specialization and ailment vocabularies,
// titlecased as the validators store them. Existing rows are left alone.
func SeedCatalog(db *gorm.DB) error {
	for _, name := range models.SpecializationNames {
		specialization := models.Specialization{Name: Title(name)}
		if err := db.Where("name = ?", specialization.Name).FirstOrCreate(&specialization).Error; err != nil {
			return err
		}
	}

	for _, name := range models.AilmentNames {
		ailment := models.Ailment{Name: Title(name)}
		if err := db.Where("name = ?", ailment.Name).FirstOrCreate(&ailment).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d specializations and %d ailments",
		len(models.SpecializationNames), len(models.AilmentNames))
	return nil
}

// SeedAdmin creates an initial admin account if the email is unused.
func SeedAdmin(db *gorm.DB, email, username, password string) error {
	var count int64
	if err := db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Admin account %s already exists, skipping", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Account{
		Email:       email,
		Username:    username,
		FirstName:   "Admin",
		LastName:    "User",
		Password:    string(hash),
		IsActive:    true,
		IsAdmin:     true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Created admin account %s", email)
	return nil
}

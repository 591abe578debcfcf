package database

import (
	"log"

	"clinicare/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.Account{},
		&models.Patient{},
		&models.Specialist{},
		&models.Specialization{},
		&models.Ailment{},
		&models.Report{},
		&models.Prescription{},
		&models.CodeSequence{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"clinicare/database"
	"clinicare/internal/utils"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCatalog := flag.Bool("catalog", true, "Seed the specialization and ailment vocabularies")
	adminEmail := flag.String("admin-email", "", "Email for the initial admin account (skipped when empty)")
	adminUsername := flag.String("admin-username", "admin", "Username for the initial admin account")
	adminPassword := flag.String("admin-password", "", "Password for the initial admin account")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if *seedCatalog {
		if err := utils.SeedCatalog(database.DB); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	if *adminEmail != "" {
		if *adminPassword == "" {
			log.Fatal("-admin-password is required with -admin-email")
		}
		if err := utils.SeedAdmin(database.DB, *adminEmail, *adminUsername, *adminPassword); err != nil {
			log.Fatalf("Failed to seed admin account: %v", err)
		}
	}

	log.Println("Seeding complete")
}

package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"clinicare/database"
	"clinicare/internal/auth"
	"clinicare/internal/cache"
	"clinicare/internal/controllers"
	"clinicare/internal/repository"
	"clinicare/internal/services"
	"clinicare/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}
	tokenManager := auth.NewTokenManager(
		[]byte(jwtSecret),
		durationEnv("JWT_ACCESS_TTL", 15*time.Minute),
		durationEnv("JWT_REFRESH_TTL", 7*24*time.Hour),
	)

	// Refresh-token blacklist. The server still runs without Redis;
	// logout and rotation just stop revoking.
	var blacklist services.TokenBlacklist
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, token revocation disabled: %v", err)
	} else {
		defer redisClient.Close()
		blacklist = redisClient
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(database.DB)
	patientRepo := repository.NewPatientRepository(database.DB)
	specialistRepo := repository.NewSpecialistRepository(database.DB)
	catalogRepo := repository.NewCatalogRepository(database.DB)
	reportRepo := repository.NewReportRepository(database.DB)
	prescriptionRepo := repository.NewPrescriptionRepository(database.DB)

	// Initialize services
	provisionService := services.NewProvisionService(accountRepo, patientRepo, specialistRepo)
	clinicalService := services.NewClinicalService(patientRepo, catalogRepo, reportRepo, prescriptionRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	authService := services.NewAuthService(accountRepo, tokenManager, blacklist)

	// Initialize controllers
	accountController := controllers.NewAccountController(provisionService, authService)
	profileController := controllers.NewProfileController(provisionService)
	catalogController := controllers.NewCatalogController(catalogService)
	clinicalController := controllers.NewClinicalController(clinicalService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Clinicare API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAccountRoutes(router, accountController)
	routes.RegisterProfileRoutes(router, profileController)
	routes.RegisterCatalogRoutes(router, tokenManager, catalogController)
	routes.RegisterClinicalRoutes(router, tokenManager, clinicalController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Clinicare API server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using %v", key, value, fallback)
		return fallback
	}
	return parsed
}

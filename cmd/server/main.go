package main

import (
	"fmt"
	"log"
	"os"

	"khisha/internal/auth"
	"khisha/internal/database"
	"khisha/internal/handlers"
	"khisha/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment from .env in development; real env wins in production
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure trusted proxies
	router.SetTrustedProxies([]string{"127.0.0.1"})

	// CORS for the single-page client
	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", utils.RequestIDHeader},
		AllowCredentials: true,
	}))

	// Tag every request with an ID for log correlation
	router.Use(utils.RequestID())

	// Basic routes
	router.GET("/", handlers.HomeHandler)
	router.GET("/health", handlers.HealthHandler)

	// Auth routes (no auth required)
	router.POST("/api/auth/register", handlers.Register)
	router.POST("/api/auth/login", handlers.Login)

	// Protected routes (auth required)
	api := router.Group("/api")
	api.Use(auth.AuthMiddleware())
	{
		api.GET("/auth/me", handlers.GetCurrentUser)

		// Profile
		api.GET("/users/profile", handlers.GetProfile)
		api.PUT("/users/profile", handlers.UpdateProfile)
		api.PUT("/users/password", handlers.ChangePassword)
		api.POST("/users/avatar", handlers.UploadAvatar)

		// Reminders
		api.GET("/reminders", handlers.GetReminders)
		api.GET("/reminders/stats", handlers.GetReminderStats)
		api.POST("/reminders", handlers.CreateReminder)
		api.PUT("/reminders/:id", handlers.UpdateReminder)
		api.DELETE("/reminders/:id", handlers.DeleteReminder)
		api.POST("/reminders/:id/complete", handlers.CompleteReminder)
		api.POST("/reminders/:id/toggle", handlers.ToggleReminder)

		// Journal
		api.GET("/journal", handlers.GetJournalEntries)
		api.POST("/journal", handlers.CreateJournalEntry)
		api.PUT("/journal/:id", handlers.UpdateJournalEntry)
		api.DELETE("/journal/:id", handlers.DeleteJournalEntry)

		// Symptoms
		api.GET("/symptoms", handlers.GetSymptoms)
		api.POST("/symptoms", handlers.CreateSymptom)
		api.PUT("/symptoms/:id", handlers.UpdateSymptom)
		api.DELETE("/symptoms/:id", handlers.DeleteSymptom)

		// Medications
		api.GET("/medications", handlers.GetMedications)
		api.POST("/medications", handlers.CreateMedication)
		api.PUT("/medications/:id", handlers.UpdateMedication)
		api.DELETE("/medications/:id", handlers.DeleteMedication)
		api.POST("/medications/:id/taken", handlers.RecordDose)
		api.GET("/medications/:id/doses", handlers.GetDoseHistory)

		// Search across journal entries and symptoms
		api.GET("/search", handlers.Search)
	}

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	fmt.Printf("Server starting on port %s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

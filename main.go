package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lushlocks-backend/config"
	"lushlocks-backend/database"
	"lushlocks-backend/routes"
	"lushlocks-backend/storage"
	"lushlocks-backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	// Validate critical environment variables
	if err := config.ValidateEnv(); err != nil {
		log.Fatal("Environment validation failed: ", err)
	}

	// Pick the snapshot backend
	var backend storage.Backend
	var gormDB *gorm.DB

	switch config.GetEnv("STORAGE_BACKEND", "file") {
	case "postgres":
		db, err := database.Connect()
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		gormDB = db
		backend = storage.NewGormBackend(db)
		log.Println("Using postgres snapshot storage")
	default:
		fb, err := storage.NewFileBackend(config.GetEnv("DATA_DIR", "./data"))
		if err != nil {
			log.Fatal("Failed to initialize file storage:", err)
		}
		backend = fb
		log.Printf("Using file snapshot storage in %s", config.GetEnv("DATA_DIR", "./data"))
	}

	// Simulated credential-check latency, configurable for local testing
	delayMs, err := strconv.Atoi(config.GetEnv("MOCK_AUTH_DELAY_MS", "500"))
	if err != nil || delayMs < 0 {
		delayMs = 500
	}
	verifier := store.MockVerifier{Delay: time.Duration(delayMs) * time.Millisecond}

	stores := routes.Stores{
		Cart:     store.NewCart(backend),
		Wishlist: store.NewWishlist(backend),
		CRUD:     store.NewCRUD(backend),
		Auth:     store.NewAuth(backend, verifier),
	}

	// Setup Gin router
	r := gin.Default()

	// CORS configuration - filter out empty strings from AllowOrigins
	origins := []string{os.Getenv("FRONTEND_URL"), os.Getenv("ADMIN_URL")}
	var filteredOrigins []string
	for _, o := range origins {
		if o != "" {
			filteredOrigins = append(filteredOrigins, o)
		}
	}
	if len(filteredOrigins) == 0 {
		filteredOrigins = []string{"http://localhost:3000"}
		log.Println("WARNING: No CORS origins configured, defaulting to http://localhost:3000")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     filteredOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(r, stores)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Run server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if gormDB != nil {
		sqlDB, err := gormDB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("Error closing database connection: %v", err)
			} else {
				log.Println("Database connection closed")
			}
		}
	}

	log.Println("Server exited gracefully")
}

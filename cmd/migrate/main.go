package main

import (
	"log"
	"os"

	"notebook-dashboard-be/internal/config"
	"notebook-dashboard-be/internal/model"
	"notebook-dashboard-be/pkg/database"
)

// Creates the users and notebooks tables and the upload directory.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	log.Println("Creating database tables...")
	if err := db.AutoMigrate(&model.User{}, &model.Notebook{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := os.MkdirAll(cfg.App.UploadDir, 0o755); err != nil {
		log.Fatalf("Unable to create upload dir %s: %v", cfg.App.UploadDir, err)
	}

	log.Println("Database initialized successfully")
}

package main

import (
	"log"
	"os"

	"notebook-dashboard-be/internal/bootstrap"
	"notebook-dashboard-be/internal/config"
	"notebook-dashboard-be/internal/server"
	"notebook-dashboard-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Ensure the upload directory exists
	if err := os.MkdirAll(cfg.App.UploadDir, 0o755); err != nil {
		log.Panicf("Unable to create upload dir %s: %v", cfg.App.UploadDir, err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 5. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}

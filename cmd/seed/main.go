package main

import (
	"context"
	"log"
	"time"

	"notebook-dashboard-be/internal/config"
	"notebook-dashboard-be/internal/entity"
	"notebook-dashboard-be/internal/repository/implementation"
	"notebook-dashboard-be/internal/repository/specification"
	"notebook-dashboard-be/pkg/database"
)

// Seeds the externally hosted DAI analysis notebook: a catalog record with
// no stored file, an external link and a display attribution. Idempotent.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	ctx := context.Background()
	userRepo := implementation.NewUserRepository(db)
	notebookRepo := implementation.NewNotebookRepository(db)

	owner, err := userRepo.FindOne(ctx, specification.OrderBy{Field: "id", Desc: false}, specification.Limit{N: 1})
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}
	if owner == nil {
		log.Fatal("No user found. Register a user first, then re-run the seed.")
	}

	existing, err := notebookRepo.FindOne(ctx, specification.ByTitle{Title: "Ngoc - DAI Analysis"})
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}
	if existing != nil {
		log.Println("DAI analysis notebook already exists")
		return
	}

	notebook := &entity.Notebook{
		Title:       "Ngoc - DAI Analysis",
		Description: "Analysis of DAI stablecoin by Ngoc",
		Filename:    "external_colab.ipynb",
		FilePath:    "",
		ExternalURL: "https://colab.research.google.com/drive/1OiGcsfKAqWxppyrtdWjYHRRqa-xYVMfs#scrollTo=ucp0YmYX5LG0",
		AuthorName:  "Ngoc",
		Tags:        "stablecoin,dai,ngoc,external",
		IsPublic:    true,
		UserId:      owner.Id,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := notebookRepo.Create(ctx, notebook); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	count, _ := notebookRepo.Count(ctx)
	log.Printf("Added DAI analysis notebook (id=%d). Total notebooks: %d", notebook.Id, count)
}

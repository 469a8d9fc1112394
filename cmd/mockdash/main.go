package main

import (
	"log"
	"os"

	"notebook-dashboard-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

// mockdash is the serverless deployment variant: the same dashboard pages
// backed by fixed sample data instead of a database. No auth, no uploads.

func mockNotebooks() []*dto.NotebookSummaryResponse {
	return []*dto.NotebookSummaryResponse{
		{
			Id:          1,
			Title:       "CBDC Market Analysis 2024",
			Description: "Comprehensive analysis of Central Bank Digital Currency adoption trends",
			Author:      "Analyst1",
			Tags:        []string{"cbdc", "analysis"},
			Views:       1250,
			Likes:       89,
			CreatedAt:   "2024-01-15T00:00:00Z",
		},
		{
			Id:          2,
			Title:       "Stablecoin Performance Metrics",
			Description: "Real-time analysis of major stablecoin performance and market dynamics",
			Author:      "CryptoResearcher",
			Tags:        []string{"stablecoin", "metrics"},
			Views:       890,
			Likes:       67,
			CreatedAt:   "2024-01-14T00:00:00Z",
		},
		{
			Id:          3,
			Title:       "Regulatory Impact on CBDC Development",
			Description: "Analysis of global regulatory frameworks and their impact on CBDC projects",
			Author:      "PolicyAnalyst",
			Tags:        []string{"cbdc", "regulation"},
			Views:       640,
			Likes:       41,
			CreatedAt:   "2024-01-12T00:00:00Z",
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func main() {
	viewsDir := getEnv("VIEWS_DIR", "web/views")
	staticDir := getEnv("STATIC_DIR", "web/static")
	port := getEnv("APP_PORT", "5001")

	engine := html.New(viewsDir, ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Static("/static", staticDir)

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Render("mock_index", fiber.Map{
			"Title":     "Notebook Dashboard",
			"Notebooks": mockNotebooks(),
		}, "layouts/main")
	})

	app.Get("/api/notebooks", func(ctx *fiber.Ctx) error {
		return ctx.JSON(mockNotebooks())
	})

	app.Get("/api/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok", "mode": "mock"})
	})

	log.Fatal(app.Listen(":" + port))
}

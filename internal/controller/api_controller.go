package controller

import (
	"notebook-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IApiController interface {
	RegisterRoutes(r fiber.Router)
	Notebooks(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type apiController struct {
	catalog service.ICatalogService
}

func NewApiController(catalog service.ICatalogService) IApiController {
	return &apiController{catalog: catalog}
}

func (c *apiController) RegisterRoutes(r fiber.Router) {
	r.Get("/notebooks", c.Notebooks)
	r.Get("/health", c.Health)
}

// Notebooks serves the read-only public listing: up to the 20 most recent
// public notebooks as a bare JSON array.
func (c *apiController) Notebooks(ctx *fiber.Ctx) error {
	summaries, err := c.catalog.ListSummaries(ctx.Context(), 20)
	if err != nil {
		return err
	}
	return ctx.JSON(summaries)
}

func (c *apiController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

package server

import (
	"notebook-dashboard-be/internal/bootstrap"
	"notebook-dashboard-be/internal/config"
	"notebook-dashboard-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html/v2"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	engine := html.New(cfg.App.ViewsDir, ".html")

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.App.BodyLimit, // 16 MiB: oversized uploads never reach a handler
		Views:        engine,
		ErrorHandler: serverutils.ErrorHandler(container.Logger),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, OPTIONS",
	}))

	app.Use(serverutils.SessionMiddleware(container.Sessions))

	// Static
	app.Static("/uploads", cfg.App.UploadDir)
	app.Static("/static", cfg.App.StaticDir)

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("server", "listening", map[string]interface{}{
		"port": s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.AuthController.RegisterRoutes(app)
	c.NotebookController.RegisterRoutes(app)

	api := app.Group("/api")
	c.ApiController.RegisterRoutes(api)
}

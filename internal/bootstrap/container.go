package bootstrap

import (
	"notebook-dashboard-be/internal/config"
	"notebook-dashboard-be/internal/controller"
	"notebook-dashboard-be/internal/pkg/logger"
	"notebook-dashboard-be/internal/repository/implementation"
	"notebook-dashboard-be/internal/repository/memory"
	"notebook-dashboard-be/internal/service"

	"gorm.io/gorm"
)

// Container wires the whole dependency graph explicitly; nothing in the
// application reads process-wide state after this point.
type Container struct {
	AuthController     controller.IAuthController
	NotebookController controller.INotebookController
	ApiController      controller.IApiController

	Sessions *memory.SessionRepository
	Logger   logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	userRepo := implementation.NewUserRepository(db)
	notebookRepo := implementation.NewNotebookRepository(db)
	sessions := memory.NewSessionRepository(cfg.Session.TTL)

	authService := service.NewAuthService(userRepo, sessions)
	catalogService := service.NewCatalogService(notebookRepo, userRepo)
	uploadService := service.NewUploadService(notebookRepo, cfg.App.UploadDir, sysLogger)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		NotebookController: controller.NewNotebookController(catalogService, uploadService),
		ApiController:      controller.NewApiController(catalogService),
		Sessions:           sessions,
		Logger:             sysLogger,
	}
}

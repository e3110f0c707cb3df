package server

import (
	"github.com/gin-gonic/gin"

	"github.com/yamui/generator-backend/internal/http/handlers"
	"github.com/yamui/generator-backend/internal/http/middleware"
	"github.com/yamui/generator-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AssetHandler   *handlers.AssetHandler
	ProjectHandler *handlers.ProjectHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.AttachRequestID())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS())

	router.GET("/health", handlers.HealthCheck)

	router.GET("/widgets/palette", cfg.ProjectHandler.Palette)
	router.GET("/projects/template", cfg.ProjectHandler.Template)
	router.POST("/projects/import", cfg.ProjectHandler.Import)
	router.POST("/projects/export", cfg.ProjectHandler.Export)
	router.POST("/projects/validate", cfg.ProjectHandler.Validate)
	router.GET("/project/settings", cfg.ProjectHandler.Settings)
	router.PUT("/project/settings", cfg.ProjectHandler.UpdateSettings)

	router.POST("/assets/catalog", cfg.AssetHandler.Catalog)
	router.POST("/assets/upload", cfg.AssetHandler.Upload)
	router.PATCH("/assets/catalog/tags", cfg.AssetHandler.UpdateTags)
	router.GET("/assets/files/*path", cfg.AssetHandler.ServeFile)

	return router
}

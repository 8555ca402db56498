package app

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pagecraft-backend/internal/handlers"
	"pagecraft-backend/internal/middleware"
	"pagecraft-backend/pkg/logger"
)

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.rateLimits))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(a.services.Auth)
	pageHandler := handlers.NewPageHandler(a.services.Page)
	builderHandler := handlers.NewBuilderHandler(a.services.Builder)
	languageHandler := handlers.NewLanguageHandler(a.services.Language)
	schemaHandler := handlers.NewSchemaHandler(a.registry)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("")
		public.Use(middleware.LanguageNegotiationMiddleware(a.services.Language))
		{
			public.POST("/login", authHandler.Login)

			public.GET("/pages", pageHandler.GetAll)
			public.GET("/pages/resolve", pageHandler.Resolve)

			public.GET("/languages", languageHandler.Get)

			public.GET("/sections", schemaHandler.List)
			public.GET("/sections/:type", schemaHandler.Get)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.services.Auth))
		{
			admin.GET("/me", authHandler.Me)

			admin.GET("/pages", pageHandler.GetAllAdmin)
			admin.POST("/pages", pageHandler.Create)
			admin.GET("/pages/:id", pageHandler.GetByID)
			admin.PUT("/pages/:id", pageHandler.Update)
			admin.DELETE("/pages/:id", pageHandler.Delete)
			admin.POST("/pages/:id/duplicate", pageHandler.Duplicate)

			admin.GET("/builder/config", builderHandler.Config)

			builder := admin.Group("/pages/:id/builder")
			{
				builder.POST("/sections", builderHandler.AddSection)
				builder.PUT("/sections/reorder", builderHandler.ReorderSections)
				builder.PUT("/sections/:sectionId", builderHandler.UpdateSection)
				builder.DELETE("/sections/:sectionId", builderHandler.DeleteSection)
				builder.POST("/sections/:sectionId/duplicate", builderHandler.DuplicateSection)

				builder.GET("/sections/:sectionId/content", builderHandler.SectionContent)
				builder.PUT("/sections/:sectionId/content", builderHandler.UpdateContent)
				builder.DELETE("/sections/:sectionId/translations/:language", builderHandler.RemoveTranslation)

				builder.PUT("/sections/:sectionId/styles", builderHandler.UpdateStyles)
				builder.PUT("/sections/:sectionId/field-styles", builderHandler.UpdateFieldStyles)
				builder.PUT("/sections/:sectionId/item-styles", builderHandler.UpdateItemStyles)

				builder.POST("/sections/:sectionId/items", builderHandler.AddItem)
				builder.DELETE("/sections/:sectionId/items", builderHandler.RemoveItem)
				builder.POST("/sections/:sectionId/items/duplicate", builderHandler.DuplicateItem)
				builder.PUT("/sections/:sectionId/items", builderHandler.UpdateItem)
				builder.PUT("/sections/:sectionId/items/reorder", builderHandler.ReorderItem)

				builder.GET("/selection", builderHandler.GetSelection)
				builder.PUT("/selection", builderHandler.Select)
				builder.DELETE("/selection", builderHandler.ClearSelection)
				builder.GET("/breadcrumbs", builderHandler.Breadcrumbs)
			}

			adminOnly := admin.Group("")
			adminOnly.Use(middleware.AdminMiddleware())
			{
				adminOnly.PUT("/languages", languageHandler.Update)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "route not found",
			"path":  c.Request.URL.Path,
		})
	})

	a.router = router
}

package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-showcase/internal/config"
	"github.com/BruksfildServices01/barber-showcase/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-showcase/internal/infra/repository"
	"github.com/BruksfildServices01/barber-showcase/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	metrics := middleware.NewMetrics()

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		metrics.Middleware(),
		middleware.CORSMiddleware(cfg.CORSOrigin),
	)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	catalogRepo := infraRepo.NewCatalogGormRepository(db)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler()
	barberHandler := handlers.NewBarberHandler(catalogRepo)
	hairstyleHandler := handlers.NewHairstyleHandler(catalogRepo)
	exampleHandler := handlers.NewExampleHandler(catalogRepo)

	// ======================================================
	// 🔧 OPS
	// ======================================================
	r.GET("/health", publicHandler.Health)
	r.GET("/metrics", metrics.Handler())

	r.GET("/", publicHandler.Root)
	r.GET("/items/:item_id", publicHandler.Item)

	// ======================================================
	// 💈 BARBERS
	// ======================================================
	barbers := r.Group("/barbers")
	{
		barbers.POST("", barberHandler.Create)
		barbers.GET("", barberHandler.List)
		barbers.GET("/:id", barberHandler.Get)
		barbers.PUT("/:id", barberHandler.Update)
		barbers.DELETE("/:id", barberHandler.Delete)
		barbers.GET("/:id/hairstyles", barberHandler.ListHairstyles)
		barbers.GET("/:id/examples", barberHandler.ListExamples)
	}

	// ======================================================
	// ✂️ HAIRSTYLES
	// ======================================================
	hairstyles := r.Group("/hairstyles")
	{
		hairstyles.POST("", hairstyleHandler.Create)
		hairstyles.GET("", hairstyleHandler.List)
		hairstyles.GET("/:id", hairstyleHandler.Get)
		hairstyles.PUT("/:id", hairstyleHandler.Update)
		hairstyles.DELETE("/:id", hairstyleHandler.Delete)
		hairstyles.GET("/:id/examples", hairstyleHandler.ListExamples)
	}

	// ======================================================
	// 🖼️ EXAMPLES
	// ======================================================
	examples := r.Group("/examples")
	{
		examples.POST("", exampleHandler.Create)
		examples.GET("", exampleHandler.List)
		examples.GET("/:id", exampleHandler.Get)
		examples.PUT("/:id", exampleHandler.Update)
		examples.DELETE("/:id", exampleHandler.Delete)
	}
}

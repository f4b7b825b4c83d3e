package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/container"
	"github.com/joshua-takyi/eventhub/internal/handlers"
	"github.com/joshua-takyi/eventhub/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	origins := []string{"http://localhost:3000"}
	if container.Config != nil && len(container.Config.CORSOrigins) > 0 {
		origins = container.Config.CORSOrigins
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": "eventhub-api",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	eventRoutes := v1.Group("/events")
	{
		eventRoutes.GET("", handlers.ListEvents(container.Catalog))
		eventRoutes.POST("", handlers.CreateEvent(container.Catalog))
		eventRoutes.GET("/:id", handlers.GetEvent(container.Catalog))
		eventRoutes.PUT("/:id", handlers.UpdateEvent(container.Catalog))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.Catalog))
		eventRoutes.POST("/:id/attendance", handlers.AdjustAttendance(container.Catalog))
	}

	v1.GET("/categories", handlers.ListCategories(container.Catalog))
	v1.GET("/stats", handlers.CatalogStats(container.Catalog))

	organizerRoutes := v1.Group("/organizers")
	{
		organizerRoutes.GET("", handlers.ListOrganizers(container.Ranks))
		organizerRoutes.GET("/:id", handlers.GetOrganizer(container.Ranks))
		organizerRoutes.POST("/:id/outcomes", handlers.RecordOutcome(container.Ranks))
	}

	medalRoutes := v1.Group("/medals")
	{
		medalRoutes.GET("", handlers.ListMedalCategories(container.Ranks))
		medalRoutes.GET("/:category", handlers.MedalForPoints())
		medalRoutes.GET("/:category/points", handlers.EventPoints())
	}

	return r
}

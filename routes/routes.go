package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"reservas-backend/config"
	"reservas-backend/controllers"
	"reservas-backend/store"
)

// SetupRouter wires the API routes and the static SPA delivery.
func SetupRouter(cfg config.Config, s *store.Store, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	reservationController := controllers.ReservationController{Store: s}
	categoryController := controllers.CategoryController{Store: s}
	dashboardController := controllers.DashboardController{Store: s}
	exportController := controllers.ExportController{Store: s}

	api := r.Group("/api")
	{
		reservations := api.Group("/reservations")
		{
			reservations.GET("", reservationController.ListReservations)
			reservations.POST("", reservationController.CreateReservation)
			reservations.PUT("/:id", reservationController.UpdateReservation)
			reservations.DELETE("/:id", reservationController.DeleteReservation)
			reservations.PATCH("/:id/status", reservationController.SetReservationStatus)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryController.ListCategories)
			categories.POST("/import", categoryController.ImportCategories)
		}

		api.GET("/dashboard", dashboardController.GetOverview)
		api.GET("/calendar/month", dashboardController.GetMonthGrid)
		api.GET("/calendar/year", dashboardController.GetYearOverview)

		api.GET("/export", exportController.DownloadWorkbook)
	}

	// Static SPA delivery: serve the built bundle and fall back to
	// index.html for every unmatched non-API path, so client-side routing
	// keeps working on refresh.
	r.Static("/assets", filepath.Join(cfg.StaticDir, "assets"))
	r.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	return r
}

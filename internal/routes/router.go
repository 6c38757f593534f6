package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yashwanthgowda1/backend-server/internal/config"
	"github.com/Yashwanthgowda1/backend-server/internal/handlers"
	"github.com/Yashwanthgowda1/backend-server/internal/middleware"
	"github.com/Yashwanthgowda1/backend-server/internal/repository"
)

// NewRouter wires every endpoint under cfg.PathPrefix. The prefixed
// and unprefixed deployments share this one routing table.
func NewRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(corsConfig(cfg)))

	employeeH := handlers.NewEmployeeHandler(repository.NewEmployeeRepository(db))
	attendanceH := handlers.NewAttendanceHandler(repository.NewAttendanceRepository(db))
	statsH := handlers.NewStatsHandler(repository.NewStatsRepository(db))
	exportH := handlers.NewExportHandler(repository.NewAttendanceRepository(db))
	healthH := handlers.NewHealthHandler(db)

	api := r.Group(cfg.PathPrefix)
	{
		api.GET("/", handlers.Root)
		api.GET("/health", healthH.Get)

		api.GET("/employees", employeeH.List)
		api.POST("/employees", employeeH.Upsert)

		api.POST("/attendance", attendanceH.Upsert)
		api.GET("/attendance", attendanceH.ListFiltered)
		api.GET("/attendance/:emp_id", attendanceH.ListByEmployee)
		api.GET("/attendance-range/:emp_id/:start_date/:end_date", attendanceH.ListRange)
		api.DELETE("/attendance/:id", attendanceH.Delete)

		api.GET("/stats", statsH.Get)
		api.GET("/export", exportH.Export)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "route not found",
			"endpoints": knownEndpoints(cfg.PathPrefix),
		})
	})

	return r
}

func corsConfig(cfg config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}

func knownEndpoints(prefix string) []string {
	paths := []string{
		"GET /",
		"GET /health",
		"GET /employees",
		"POST /employees",
		"POST /attendance",
		"GET /attendance",
		"GET /attendance/:emp_id",
		"GET /attendance-range/:emp_id/:start_date/:end_date",
		"DELETE /attendance/:id",
		"GET /stats",
		"GET /export",
	}
	if prefix == "" {
		return paths
	}

	prefixed := make([]string, len(paths))
	for i, path := range paths {
		parts := strings.SplitN(path, " ", 2)
		prefixed[i] = parts[0] + " " + prefix + parts[1]
	}
	return prefixed
}

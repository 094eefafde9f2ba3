package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	"go-insights-dashboard/internal/api/handler"
	"go-insights-dashboard/pkg/router"
)

// RegisterRoutes wires every dashboard endpoint onto the router.
func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/sessions", handler.CreateSession)
	r.GET("/api/v1/sessions", handler.ListSessions)
	// More specific routes first
	r.POST("/api/v1/sessions/*/upload", handler.UploadFile)
	r.GET("/api/v1/sessions/*/options", handler.GetFilterOptions)
	r.POST("/api/v1/sessions/*/filters", handler.ApplyFilters)
	r.GET("/api/v1/sessions/*/data", handler.GetData)
	r.GET("/api/v1/sessions/*/summary", handler.GetSummary)
	r.GET("/api/v1/sessions/*/charts", handler.GetCharts)
	r.POST("/api/v1/sessions/*/export", handler.ExportData)
	r.GET("/api/v1/sessions/*/files", handler.GetSessionFiles)
	r.GET("/api/v1/sessions/*/activity", handler.GetSessionActivity)
	// Generic session routes last
	r.GET("/api/v1/sessions/*", handler.GetSession)
	r.DELETE("/api/v1/sessions/*", handler.DeleteSession)
	r.GET("/api/v1/download/*/*", handler.DownloadFile)

	r.Mount("/swagger/", httpSwagger.WrapHandler)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"whitelotus.com/wms/advisor"
	"whitelotus.com/wms/config"
	"whitelotus.com/wms/core"
	"whitelotus.com/wms/infrastructure/communication"
	"whitelotus.com/wms/web/middlewares"
)

type Endpoint struct {
	Svc      *core.Service
	Advisor  *advisor.Advisor
	Notifier *communication.Slack
	Cfg      config.Config
}

// Register wires every route. /auth/* and /worker/* are public (the QR token
// is the worker's credential); /api/* requires an admin session token.
func Register(r *gin.Engine, ep *Endpoint) {
	r.POST("/auth/admin/login", ep.AdminLogin)
	r.POST("/auth/worker/scan", ep.WorkerScan)

	r.POST("/worker/attendance", ep.WorkerMarkAttendance)
	r.POST("/worker/tasks", ep.WorkerTasks)
	r.POST("/worker/tasks/status", ep.WorkerUpdateTaskStatus)

	api := r.Group("/api")
	api.Use(middlewares.Authentication(ep.Cfg.JWTSecret))
	{
		api.GET("/workers", ep.ListWorkers)
		api.POST("/workers", ep.AddWorker)
		api.DELETE("/workers/:id", ep.DeleteWorker)

		api.GET("/attendance", ep.ListAttendance)
		api.POST("/attendance/mark", ep.MarkAttendance)
		api.POST("/attendance/manual", ep.CreateManualRecord)
		api.GET("/attendance/export.csv", ep.ExportCSV)
		api.GET("/attendance/export.xlsx", ep.ExportXLSX)
		api.GET("/attendance/archive", ep.ListArchivedExports)

		api.GET("/tasks", ep.ListTasks)
		api.POST("/tasks", ep.AddTask)
		api.PUT("/tasks/:id/status", ep.UpdateTaskStatus)
		api.DELETE("/tasks/:id", ep.DeleteTask)

		api.GET("/settings", ep.GetSettings)
		api.PUT("/settings", ep.UpdateSettings)
		api.POST("/settings/logo", ep.UploadLogo)

		api.GET("/dashboard/stats", ep.DashboardStats)
		api.GET("/dashboard/chart", ep.WeeklyChart)
		api.POST("/dashboard/briefing", ep.DailyBriefing)

		api.POST("/assistant/chat", ep.AssistantChat)

		api.POST("/admin/seed", ep.SeedDemoData)
	}
}

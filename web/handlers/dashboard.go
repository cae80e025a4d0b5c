package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whitelotus.com/wms/web/common"
)

func (ep *Endpoint) DashboardStats(c *gin.Context) {
	stats, err := ep.Svc.DashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(stats))
}

func (ep *Endpoint) WeeklyChart(c *gin.Context) {
	points, err := ep.Svc.WeeklyChart()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(points))
}

// DailyBriefing always answers 200: AI failures come back as the advisor's
// canned degradation text, not as errors.
func (ep *Endpoint) DailyBriefing(c *gin.Context) {
	snap, err := ep.Svc.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	settings, err := ep.Svc.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	text := ep.Advisor.DailyBriefing(c.Request.Context(), settings.OrganizationName, snap)
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"briefing": text}))
}

// SeedDemoData destructively reseeds the store and returns the fresh QR
// tokens, visible this one time only.
func (ep *Endpoint) SeedDemoData(c *gin.Context) {
	tokens, err := ep.Svc.SeedDemoData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	ep.Notifier.Info("demo data reseeded: %d workers", len(tokens))
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"qr_tokens": tokens}))
}

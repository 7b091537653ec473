package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"grievance-api/config"
	"grievance-api/services"
)

// GetDashboardStats returns the per-status totals shown on the dashboard
// summary cards.
func GetDashboardStats(c *gin.Context) {
	store := services.NewGrievanceStore(config.DB)

	counts, err := store.CountByStatus(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total":        counts.Total,
			"by_status":    counts.ByStatus,
			"current_date": time.Now().Format("2006-01-02"),
		},
	})
}

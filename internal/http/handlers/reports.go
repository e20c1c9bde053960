package handlers

import (
	"net/http"

	"tourism/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/dashboard (staff/admin)
func GetDashboardReport(c *gin.Context) {
	svc := services.ReportsService{}
	dashboard, err := svc.GetDashboard()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}

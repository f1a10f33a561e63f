package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayplan/database"
	"wayplan/planner"
	"wayplan/services"
)

// ExportPlanHandler renders the caller's grouped plan as a PDF. The
// document is generated on demand from the stored records, so it always
// reflects the latest quantities.
func ExportPlanHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	rows, err := database.ListPlans(userID)
	if err != nil {
		log.Printf("❌ Failed to list plans for export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No plans to export"})
		return
	}

	records := database.DecodePlans(rows)
	groups := planner.GroupByCity(records, locations)

	pdfBytes, err := services.GeneratePlanPDFBytes(services.PlanPDFData{
		TravelerName: c.Query("traveler_name"),
		Groups:       groups,
	})
	if err != nil {
		log.Printf("❌ Failed to generate plan PDF: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=wayplan-trip.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func HealthHandler(c *gin.Context) {
	db := database.DB
	dbStatus := "ok"
	if db == nil {
		dbStatus = "not initialized"
	} else if err := db.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "Wayplan API",
		"database": dbStatus,
	})
}

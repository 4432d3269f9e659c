package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internal-portal-api/config"
	"internal-portal-api/models"
)

// GetDashboardStats returns headline counts for the landing page.
// Archived travel records are excluded, matching the default views.
func GetDashboardStats(c *gin.Context) {
	var (
		activeMembers    int64
		activeProjects   int64
		flights          int64
		hotels           int64
		rentals          int64
		pendingApprovals int64
	)

	type count struct {
		model interface{}
		dest  *int64
		where []interface{}
	}
	counts := []count{
		{&models.Member{}, &activeMembers, []interface{}{"inactive = ?", false}},
		{&models.Project{}, &activeProjects, []interface{}{"inactive = ?", false}},
		{&models.FlightRecord{}, &flights, []interface{}{"archived = ?", false}},
		{&models.HotelReservation{}, &hotels, []interface{}{"archived = ?", false}},
		{&models.RentalCar{}, &rentals, []interface{}{"archived = ?", false}},
		{&models.ApprovalRecord{}, &pendingApprovals, []interface{}{"status = ?", models.ApprovalStatusInProgress}},
	}

	for _, cnt := range counts {
		query := config.DB.Model(cnt.model)
		if len(cnt.where) > 0 {
			query = query.Where(cnt.where[0], cnt.where[1:]...)
		}
		if err := query.Count(cnt.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"active_members":     activeMembers,
			"active_projects":    activeProjects,
			"flights":            flights,
			"hotel_reservations": hotels,
			"rental_cars":        rentals,
			"pending_approvals":  pendingApprovals,
		},
	})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"internal-portal-api/config"
	"internal-portal-api/models"
	"internal-portal-api/services"
	"internal-portal-api/utils"
)

type flightListEntry struct {
	models.FlightRecord
	Status string `json:"status"`
}

// GetFlights lists flight records newest first. Archived records are
// hidden unless ?include_archived=true.
func GetFlights(c *gin.Context) {
	query := config.DB.Preload("Member").Preload("Project").Preload("Airline").
		Order("flight_id DESC")
	if !boolQuery(c, "include_archived") {
		query = query.Where("archived = ?", false)
	}
	if memberID := c.Query("member_id"); memberID != "" {
		query = query.Where("member_id = ?", memberID)
	}

	var flights []models.FlightRecord
	if err := query.Find(&flights).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load flights"})
		return
	}

	entries := make([]flightListEntry, 0, len(flights))
	for _, f := range flights {
		entries = append(entries, flightListEntry{
			FlightRecord: f,
			Status:       utils.TravelStatus(f.Canceled, f.Verified),
		})
	}

	c.JSON(http.StatusOK, gin.H{"flights": entries})
}

// GetFlight returns one flight by confirmation number, with the
// member's matching credit grants, the flight's usage ledger, and the
// computed available balance.
func GetFlight(c *gin.Context) {
	confirmation := c.Param("confirmation")

	var flight models.FlightRecord
	if err := config.DB.Preload("Member").Preload("Project").Preload("Airline").
		Preload("CreditUsages").Preload("CreditUsages.Grant").
		Where("confirmation_number = ?", confirmation).
		First(&flight).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		return
	}

	balance, err := services.NewCreditService(config.DB).FlightBalance(flight.FlightID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"flight":           flight,
		"status":           utils.TravelStatus(flight.Canceled, flight.Verified),
		"available_credit": balance,
		"credit_display":   utils.CreditDisplay(balance),
	})
}

type flightRequest struct {
	ConfirmationNumber string     `json:"confirmation_number" binding:"required"`
	MemberID           int        `json:"member_id" binding:"required"`
	ProjectID          int        `json:"project_id" binding:"required"`
	AirlineID          int        `json:"airline_id" binding:"required"`
	TripType           string     `json:"trip_type"`
	DepartureDate      *time.Time `json:"departure_date"`
	ReturnDate         *time.Time `json:"return_date"`
	TotalCost          float64    `json:"total_cost"`
}

// CreateFlight records a new booking.
func CreateFlight(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.FlightRecord
	if err := config.DB.Where("confirmation_number = ?", req.ConfirmationNumber).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Confirmation number already exists"})
		return
	}

	now := time.Now()
	flight := models.FlightRecord{
		ConfirmationNumber: req.ConfirmationNumber,
		MemberID:           req.MemberID,
		ProjectID:          req.ProjectID,
		AirlineID:          req.AirlineID,
		TripType:           req.TripType,
		DepartureDate:      req.DepartureDate,
		ReturnDate:         req.ReturnDate,
		TotalCost:          services.RoundCurrency(req.TotalCost),
		CreatedBy:          currentActor(c),
		CreateAt:           &now,
	}

	if err := config.DB.Create(&flight).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create flight"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"flight": flight})
}

// UpdateFlight overwrites a flight's editable fields by confirmation
// number. Last write wins across concurrent editors.
func UpdateFlight(c *gin.Context) {
	confirmation := c.Param("confirmation")

	var flight models.FlightRecord
	if err := config.DB.Where("confirmation_number = ?", confirmation).
		First(&flight).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		return
	}

	var req struct {
		MemberID      int        `json:"member_id" binding:"required"`
		ProjectID     int        `json:"project_id" binding:"required"`
		AirlineID     int        `json:"airline_id" binding:"required"`
		TripType      string     `json:"trip_type"`
		DepartureDate *time.Time `json:"departure_date"`
		ReturnDate    *time.Time `json:"return_date"`
		TotalCost     float64    `json:"total_cost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	flight.MemberID = req.MemberID
	flight.ProjectID = req.ProjectID
	flight.AirlineID = req.AirlineID
	flight.TripType = req.TripType
	flight.DepartureDate = req.DepartureDate
	flight.ReturnDate = req.ReturnDate
	flight.TotalCost = services.RoundCurrency(req.TotalCost)
	flight.UpdateAt = &now

	if err := config.DB.Save(&flight).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flight"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"flight": flight})
}

// SetFlightFlags updates the archived/verified/canceled lifecycle flags.
func SetFlightFlags(c *gin.Context) {
	confirmation := c.Param("confirmation")

	var flight models.FlightRecord
	if err := config.DB.Where("confirmation_number = ?", confirmation).
		First(&flight).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		return
	}

	var req struct {
		Archived *bool `json:"archived"`
		Verified *bool `json:"verified"`
		Canceled *bool `json:"canceled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	if req.Archived != nil {
		flight.Archived = *req.Archived
	}
	if req.Verified != nil {
		flight.Verified = *req.Verified
	}
	if req.Canceled != nil {
		flight.Canceled = *req.Canceled
	}
	flight.UpdateAt = &now

	if err := config.DB.Save(&flight).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flight"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"flight": flight,
		"status": utils.TravelStatus(flight.Canceled, flight.Verified),
	})
}

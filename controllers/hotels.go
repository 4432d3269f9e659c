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

type hotelListEntry struct {
	models.HotelReservation
	Status string `json:"status"`
}

// GetHotels lists hotel reservations newest first, hiding archived rows
// unless ?include_archived=true.
func GetHotels(c *gin.Context) {
	query := config.DB.Preload("Member").Preload("Project").Preload("Chain").
		Order("reservation_id DESC")
	if !boolQuery(c, "include_archived") {
		query = query.Where("archived = ?", false)
	}
	if memberID := c.Query("member_id"); memberID != "" {
		query = query.Where("member_id = ?", memberID)
	}

	var reservations []models.HotelReservation
	if err := query.Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hotel reservations"})
		return
	}

	entries := make([]hotelListEntry, 0, len(reservations))
	for _, r := range reservations {
		entries = append(entries, hotelListEntry{
			HotelReservation: r,
			Status:           utils.TravelStatus(r.Canceled, r.Verified),
		})
	}

	c.JSON(http.StatusOK, gin.H{"reservations": entries})
}

// GetHotel returns one reservation by confirmation number.
func GetHotel(c *gin.Context) {
	confirmation := c.Param("confirmation")

	var reservation models.HotelReservation
	if err := config.DB.Preload("Member").Preload("Project").Preload("Chain").
		Where("confirmation_number = ?", confirmation).
		First(&reservation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation": reservation,
		"status":      utils.TravelStatus(reservation.Canceled, reservation.Verified),
	})
}

type hotelRequest struct {
	ConfirmationNumber string     `json:"confirmation_number" binding:"required"`
	MemberID           int        `json:"member_id" binding:"required"`
	ProjectID          int        `json:"project_id" binding:"required"`
	ChainID            int        `json:"chain_id" binding:"required"`
	HotelName          string     `json:"hotel_name"`
	CheckInDate        *time.Time `json:"check_in_date"`
	CheckOutDate       *time.Time `json:"check_out_date"`
	TotalCost          float64    `json:"total_cost"`
}

// CreateHotel records a new reservation.
func CreateHotel(c *gin.Context) {
	var req hotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.HotelReservation
	if err := config.DB.Where("confirmation_number = ?", req.ConfirmationNumber).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Confirmation number already exists"})
		return
	}

	now := time.Now()
	reservation := models.HotelReservation{
		ConfirmationNumber: req.ConfirmationNumber,
		MemberID:           req.MemberID,
		ProjectID:          req.ProjectID,
		ChainID:            req.ChainID,
		HotelName:          req.HotelName,
		CheckInDate:        req.CheckInDate,
		CheckOutDate:       req.CheckOutDate,
		TotalCost:          services.RoundCurrency(req.TotalCost),
		CreatedBy:          currentActor(c),
		CreateAt:           &now,
	}

	if err := config.DB.Create(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

// UpdateHotel overwrites a reservation's editable fields.
func UpdateHotel(c *gin.Context) {
	confirmation := c.Param("confirmation")

	var reservation models.HotelReservation
	if err := config.DB.Where("confirmation_number = ?", confirmation).
		First(&reservation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}

	var req struct {
		MemberID     int        `json:"member_id" binding:"required"`
		ProjectID    int        `json:"project_id" binding:"required"`
		ChainID      int        `json:"chain_id" binding:"required"`
		HotelName    string     `json:"hotel_name"`
		CheckInDate  *time.Time `json:"check_in_date"`
		CheckOutDate *time.Time `json:"check_out_date"`
		TotalCost    float64    `json:"total_cost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	reservation.MemberID = req.MemberID
	reservation.ProjectID = req.ProjectID
	reservation.ChainID = req.ChainID
	reservation.HotelName = req.HotelName
	reservation.CheckInDate = req.CheckInDate
	reservation.CheckOutDate = req.CheckOutDate
	reservation.TotalCost = services.RoundCurrency(req.TotalCost)
	reservation.UpdateAt = &now

	if err := config.DB.Save(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// SetHotelFlags updates the archived/verified/canceled lifecycle flags.
func SetHotelFlags(c *gin.Context) {
	confirmation := c.Param("confirmation")

	var reservation models.HotelReservation
	if err := config.DB.Where("confirmation_number = ?", confirmation).
		First(&reservation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
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
		reservation.Archived = *req.Archived
	}
	if req.Verified != nil {
		reservation.Verified = *req.Verified
	}
	if req.Canceled != nil {
		reservation.Canceled = *req.Canceled
	}
	reservation.UpdateAt = &now

	if err := config.DB.Save(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation": reservation,
		"status":      utils.TravelStatus(reservation.Canceled, reservation.Verified),
	})
}

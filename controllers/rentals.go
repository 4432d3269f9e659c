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

type rentalListEntry struct {
	models.RentalCar
	Status string `json:"status"`
}

// GetRentals lists rental cars newest first, hiding archived rows
// unless ?include_archived=true.
func GetRentals(c *gin.Context) {
	query := config.DB.Preload("Member").Preload("Project").Preload("Vendor").
		Order("rental_id DESC")
	if !boolQuery(c, "include_archived") {
		query = query.Where("archived = ?", false)
	}
	if memberID := c.Query("member_id"); memberID != "" {
		query = query.Where("member_id = ?", memberID)
	}

	var rentals []models.RentalCar
	if err := query.Find(&rentals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rentals"})
		return
	}

	entries := make([]rentalListEntry, 0, len(rentals))
	for _, r := range rentals {
		entries = append(entries, rentalListEntry{
			RentalCar: r,
			Status:    utils.TravelStatus(r.Canceled, r.Verified),
		})
	}

	c.JSON(http.StatusOK, gin.H{"rentals": entries})
}

// GetRental returns one rental by confirmation number.
func GetRental(c *gin.Context) {
	confirmation := c.Param("confirmation")

	var rental models.RentalCar
	if err := config.DB.Preload("Member").Preload("Project").Preload("Vendor").
		Where("confirmation_number = ?", confirmation).
		First(&rental).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rental": rental,
		"status": utils.TravelStatus(rental.Canceled, rental.Verified),
	})
}

type rentalRequest struct {
	ConfirmationNumber string     `json:"confirmation_number" binding:"required"`
	MemberID           int        `json:"member_id" binding:"required"`
	ProjectID          int        `json:"project_id" binding:"required"`
	VendorID           int        `json:"vendor_id" binding:"required"`
	PickUpDate         *time.Time `json:"pick_up_date"`
	DropOffDate        *time.Time `json:"drop_off_date"`
	PickUpLocation     *string    `json:"pick_up_location"`
	TotalCost          float64    `json:"total_cost"`
}

// CreateRental records a new vehicle rental.
func CreateRental(c *gin.Context) {
	var req rentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.RentalCar
	if err := config.DB.Where("confirmation_number = ?", req.ConfirmationNumber).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Confirmation number already exists"})
		return
	}

	now := time.Now()
	rental := models.RentalCar{
		ConfirmationNumber: req.ConfirmationNumber,
		MemberID:           req.MemberID,
		ProjectID:          req.ProjectID,
		VendorID:           req.VendorID,
		PickUpDate:         req.PickUpDate,
		DropOffDate:        req.DropOffDate,
		PickUpLocation:     req.PickUpLocation,
		TotalCost:          services.RoundCurrency(req.TotalCost),
		CreatedBy:          currentActor(c),
		CreateAt:           &now,
	}

	if err := config.DB.Create(&rental).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rental"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rental": rental})
}

// UpdateRental overwrites a rental's editable fields.
func UpdateRental(c *gin.Context) {
	confirmation := c.Param("confirmation")

	var rental models.RentalCar
	if err := config.DB.Where("confirmation_number = ?", confirmation).
		First(&rental).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		return
	}

	var req struct {
		MemberID       int        `json:"member_id" binding:"required"`
		ProjectID      int        `json:"project_id" binding:"required"`
		VendorID       int        `json:"vendor_id" binding:"required"`
		PickUpDate     *time.Time `json:"pick_up_date"`
		DropOffDate    *time.Time `json:"drop_off_date"`
		PickUpLocation *string    `json:"pick_up_location"`
		TotalCost      float64    `json:"total_cost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	rental.MemberID = req.MemberID
	rental.ProjectID = req.ProjectID
	rental.VendorID = req.VendorID
	rental.PickUpDate = req.PickUpDate
	rental.DropOffDate = req.DropOffDate
	rental.PickUpLocation = req.PickUpLocation
	rental.TotalCost = services.RoundCurrency(req.TotalCost)
	rental.UpdateAt = &now

	if err := config.DB.Save(&rental).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rental"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rental": rental})
}

// SetRentalFlags updates the archived/verified/canceled lifecycle flags.
func SetRentalFlags(c *gin.Context) {
	confirmation := c.Param("confirmation")

	var rental models.RentalCar
	if err := config.DB.Where("confirmation_number = ?", confirmation).
		First(&rental).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
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
		rental.Archived = *req.Archived
	}
	if req.Verified != nil {
		rental.Verified = *req.Verified
	}
	if req.Canceled != nil {
		rental.Canceled = *req.Canceled
	}
	rental.UpdateAt = &now

	if err := config.DB.Save(&rental).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rental"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rental": rental,
		"status": utils.TravelStatus(rental.Canceled, rental.Verified),
	})
}

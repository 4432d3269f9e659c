package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"internal-portal-api/config"
	"internal-portal-api/models"
)

// Provider lookup tables, always ordered alphabetically by name.

func GetAirlines(c *gin.Context) {
	var airlines []models.Airline
	if err := config.DB.Order("airline_name ASC").Find(&airlines).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load airlines"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"airlines": airlines})
}

func GetHotelChains(c *gin.Context) {
	var chains []models.HotelChain
	if err := config.DB.Order("chain_name ASC").Find(&chains).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hotel chains"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chains": chains})
}

func GetRentalVendors(c *gin.Context) {
	var vendors []models.RentalVendor
	if err := config.DB.Order("vendor_name ASC").Find(&vendors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rental vendors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func CreateAirline(c *gin.Context) {
	var req struct {
		AirlineName string `json:"airline_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	airline := models.Airline{AirlineName: req.AirlineName, CreateAt: &now}
	if err := config.DB.Create(&airline).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create airline"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"airline": airline})
}

func CreateHotelChain(c *gin.Context) {
	var req struct {
		ChainName string `json:"chain_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	chain := models.HotelChain{ChainName: req.ChainName, CreateAt: &now}
	if err := config.DB.Create(&chain).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hotel chain"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"chain": chain})
}

func CreateRentalVendor(c *gin.Context) {
	var req struct {
		VendorName string `json:"vendor_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	vendor := models.RentalVendor{VendorName: req.VendorName, CreateAt: &now}
	if err := config.DB.Create(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rental vendor"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vendor": vendor})
}

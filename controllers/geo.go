package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"internal-portal-api/config"
	"internal-portal-api/services"
)

func geocodeService() *services.GeocodeService {
	baseURL := os.Getenv("GEOCODE_BASE_URL")
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return services.NewGeocodeService(baseURL, config.Redis)
}

// GeocodeAddresses resolves a batch of free-text addresses into map
// points. Addresses that fail to resolve are logged server-side and
// omitted from the response.
func GeocodeAddresses(c *gin.Context) {
	var req struct {
		Addresses []string `json:"addresses" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points := geocodeService().GeocodeAll(c.Request.Context(), req.Addresses)
	c.JSON(http.StatusOK, gin.H{"points": points})
}

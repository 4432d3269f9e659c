package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"internal-portal-api/services"
)

// respondServiceError maps the service error taxonomy onto HTTP codes:
// not-found 404, validation 400, persistence 500. Nothing is swallowed.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	var persistenceErr *services.PersistenceError
	if errors.As(err, &persistenceErr) {
		log.Printf("persistence failure: %v", persistenceErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	log.Printf("unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
}

// currentActor returns the acting user's display name for write
// attribution. Stored as free text, not a foreign key.
func currentActor(c *gin.Context) string {
	value, _ := c.Get("displayName")
	name, _ := value.(string)
	if name == "" {
		return "Unknown"
	}
	return name
}

func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

func parseFormID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.PostForm(name))
	if err != nil || id <= 0 {
		return 0, errors.New("Invalid " + name)
	}
	return id, nil
}

func boolQuery(c *gin.Context, name string) bool {
	v := c.Query(name)
	return v == "true" || v == "1"
}

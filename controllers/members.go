package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"internal-portal-api/config"
	"internal-portal-api/models"
)

// GetMembers lists members alphabetically. Inactive members are hidden
// unless ?include_inactive=true.
func GetMembers(c *gin.Context) {
	query := config.DB.Order("last_name ASC, first_name ASC")
	if !boolQuery(c, "include_inactive") {
		query = query.Where("inactive = ?", false)
	}

	var members []models.Member
	if err := query.Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// GetMember returns one member with approvals preloaded.
func GetMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var member models.Member
	if err := config.DB.Preload("Approvals").Preload("CreditGrants").Preload("CreditGrants.Airline").
		Where("member_id = ?", id).
		First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member})
}

type memberRequest struct {
	FirstName     string     `json:"first_name" binding:"required"`
	LastName      string     `json:"last_name" binding:"required"`
	PreferredName *string    `json:"preferred_name"`
	Email         string     `json:"email" binding:"required,email"`
	Phone         *string    `json:"phone"`
	City          *string    `json:"city"`
	State         *string    `json:"state"`
	Designation   string     `json:"designation"`
	Intern        bool       `json:"intern"`
	StartDate     *time.Time `json:"start_date"`
}

// CreateMember adds a new field technician.
func CreateMember(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	member := models.Member{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PreferredName: req.PreferredName,
		Email:         req.Email,
		Phone:         req.Phone,
		City:          req.City,
		State:         req.State,
		Designation:   req.Designation,
		Intern:        req.Intern,
		StartDate:     req.StartDate,
		CreatedBy:     currentActor(c),
		CreateAt:      &now,
	}

	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// UpdateMember overwrites a member's editable fields. Last write wins.
func UpdateMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var member models.Member
	if err := config.DB.Where("member_id = ?", id).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	member.FirstName = req.FirstName
	member.LastName = req.LastName
	member.PreferredName = req.PreferredName
	member.Email = req.Email
	member.Phone = req.Phone
	member.City = req.City
	member.State = req.State
	member.Designation = req.Designation
	member.Intern = req.Intern
	member.StartDate = req.StartDate
	member.UpdateAt = &now

	if err := config.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member})
}

// SetMemberActive flips the inactive flag. Members are never deleted.
func SetMemberActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Inactive bool `json:"inactive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member models.Member
	if err := config.DB.Where("member_id = ?", id).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	now := time.Now()
	member.Inactive = req.Inactive
	member.UpdateAt = &now

	if err := config.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member})
}

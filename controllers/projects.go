package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"internal-portal-api/config"
	"internal-portal-api/models"
)

// GetProjects lists projects alphabetically, hiding inactive ones
// unless ?include_inactive=true.
func GetProjects(c *gin.Context) {
	query := config.DB.Order("project_name ASC")
	if !boolQuery(c, "include_inactive") {
		query = query.Where("inactive = ?", false)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject returns one project with its roster.
func GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var project models.Project
	if err := config.DB.Preload("Assignments").Preload("Assignments.Member").
		Where("project_id = ?", id).
		First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

type projectRequest struct {
	ProjectName string  `json:"project_name" binding:"required"`
	Description *string `json:"description"`
	SiteAddress *string `json:"site_address"`
	Inactive    bool    `json:"inactive"`
}

// CreateProject adds a project.
func CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	project := models.Project{
		ProjectName: req.ProjectName,
		Description: req.Description,
		SiteAddress: req.SiteAddress,
		Inactive:    req.Inactive,
		CreatedBy:   currentActor(c),
		CreateAt:    &now,
	}

	if err := config.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// UpdateProject overwrites a project's fields. Last write wins.
func UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var project models.Project
	if err := config.DB.Where("project_id = ?", id).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	project.ProjectName = req.ProjectName
	project.Description = req.Description
	project.SiteAddress = req.SiteAddress
	project.Inactive = req.Inactive
	project.UpdateAt = &now

	if err := config.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// AssignMember puts a member on a project roster.
func AssignMember(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		MemberID int     `json:"member_id" binding:"required"`
		Notes    *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project
	if err := config.DB.Where("project_id = ?", projectID).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var member models.Member
	if err := config.DB.Where("member_id = ?", req.MemberID).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	now := time.Now()
	assignment := models.ProjectAssignment{
		ProjectID: projectID,
		MemberID:  req.MemberID,
		Notes:     req.Notes,
		CreatedBy: currentActor(c),
		CreateAt:  &now,
	}

	if err := config.DB.Create(&assignment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"assignment": assignment})
}

// RemoveAssignment takes a member off a project roster.
func RemoveAssignment(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "assignment_id")
	if !ok {
		return
	}

	result := config.DB.Delete(&models.ProjectAssignment{}, "assignment_id = ?", assignmentID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove assignment"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment removed"})
}

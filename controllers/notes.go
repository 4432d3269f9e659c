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

func attachmentService() *services.AttachmentService {
	// Keep nil pointers out of the interfaces so an unconfigured bucket
	// degrades to unresolved links instead of panicking.
	var store services.ObjectStore
	if config.S3Client != nil {
		store = config.S3Client
	}
	var presigner services.ObjectPresigner
	if config.S3Presigner != nil {
		presigner = config.S3Presigner
	}
	return services.NewAttachmentService(config.DB, store, presigner, config.AttachmentBucket, 15*time.Minute)
}

// GetNotes lists notes for a parent record, newest first.
func GetNotes(c *gin.Context) {
	parentType := c.Param("parent_type")
	if !models.ValidParentType(parentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent type"})
		return
	}
	parentID, ok := parseIDParam(c, "parent_id")
	if !ok {
		return
	}

	var notes []models.Note
	if err := config.DB.Where("parent_type = ? AND parent_id = ?", parentType, parentID).
		Order("note_id DESC").
		Find(&notes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// CreateNote attaches a free-text note to a member or travel record.
func CreateNote(c *gin.Context) {
	var req struct {
		ParentType string `json:"parent_type" binding:"required"`
		ParentID   int    `json:"parent_id" binding:"required"`
		Body       string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidParentType(req.ParentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent type"})
		return
	}

	body := utils.SanitizeInput(req.Body)
	if body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Note body is required"})
		return
	}

	now := time.Now()
	note := models.Note{
		ParentType: req.ParentType,
		ParentID:   req.ParentID,
		Body:       body,
		CreatedBy:  currentActor(c),
		CreateAt:   &now,
	}

	if err := config.DB.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"note": note})
}

// DeleteNote removes a single note.
func DeleteNote(c *gin.Context) {
	noteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Note{}, "note_id = ?", noteID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}

// GetAttachments lists a parent's attachments with presigned download
// URLs resolved concurrently. An attachment whose link could not be
// resolved comes back with an empty download_url.
func GetAttachments(c *gin.Context) {
	parentType := c.Param("parent_type")
	if !models.ValidParentType(parentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent type"})
		return
	}
	parentID, ok := parseIDParam(c, "parent_id")
	if !ok {
		return
	}

	attachments, err := attachmentService().ForParent(c.Request.Context(), parentType, parentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attachments": attachments})
}

// UploadAttachment stores a multipart file and records the attachment.
func UploadAttachment(c *gin.Context) {
	parentType := c.PostForm("parent_type")
	parentID, err := parseFormID(c, "parent_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	var description *string
	if d := c.PostForm("description"); d != "" {
		description = &d
	}

	attachment, err := attachmentService().Upload(c.Request.Context(), services.UploadInput{
		ParentType:  parentType,
		ParentID:    parentID,
		FileName:    fileHeader.Filename,
		MimeType:    fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Description: description,
		Actor:       currentActor(c),
		Body:        file,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attachment": attachment})
}

// DeleteAttachment removes the storage object and the attachment row.
func DeleteAttachment(c *gin.Context) {
	attachmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := attachmentService().Delete(c.Request.Context(), attachmentID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Attachment deleted"})
}

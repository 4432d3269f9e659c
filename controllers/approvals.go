package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"internal-portal-api/config"
	"internal-portal-api/models"
	"internal-portal-api/services"
)

func approvalService() *services.ApprovalService {
	return services.NewApprovalService(config.DB, notifyApprovalChange)
}

// notifyApprovalChange emails the HR distribution list when an approval
// status moves. Send failures are logged and never fail the update.
func notifyApprovalChange(member *models.Member, record *models.ApprovalRecord, previous string) {
	to := os.Getenv("HR_NOTIFY_EMAIL")
	if to == "" {
		return
	}

	subject := fmt.Sprintf("Approval update: %s - %s", member.FullName(), record.ApprovalType)
	body := fmt.Sprintf(
		"<p>%s's %s approval moved from <b>%s</b> to <b>%s</b>.</p><p>Updated by %s.</p>",
		member.FullName(), record.ApprovalType, previous, record.Status, record.UpdatedBy,
	)

	if err := config.SendMail([]string{to}, subject, body); err != nil {
		log.Printf("approval notification mail failed: %v", err)
	}
}

// GetMemberApprovals lists a member's approval records.
func GetMemberApprovals(c *gin.Context) {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	records, err := approvalService().ForMember(memberID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approvals": records})
}

// CreateApproval opens a workflow for a member. Status always starts
// at In Progress.
func CreateApproval(c *gin.Context) {
	var req struct {
		MemberID     int    `json:"member_id" binding:"required"`
		ApprovalType string `json:"approval_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := approvalService().Create(req.MemberID, req.ApprovalType, currentActor(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"approval": record})
}

// UpdateApproval overwrites an approval record's mutable fields. Any
// status in the type's enumeration may be set from any prior status.
func UpdateApproval(c *gin.Context) {
	approvalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status             string     `json:"status" binding:"required"`
		PivStatus          *string    `json:"piv_status"`
		DocumentsCollected bool       `json:"documents_collected"`
		SubmittedDate      *time.Time `json:"submitted_date"`
		ApprovedDate       *time.Time `json:"approved_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := approvalService().Update(approvalID, services.ApprovalUpdate{
		Status:             req.Status,
		PivStatus:          req.PivStatus,
		DocumentsCollected: req.DocumentsCollected,
		SubmittedDate:      req.SubmittedDate,
		ApprovedDate:       req.ApprovedDate,
	}, currentActor(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approval": record})
}

// GetApprovalStatuses exposes the status enumeration per approval type
// so the form layer stays in sync with the backend.
func GetApprovalStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses": gin.H{
			models.ApprovalTypeBackgroundCheck: models.ApprovalStatuses(models.ApprovalTypeBackgroundCheck),
			models.ApprovalTypeClearance:       models.ApprovalStatuses(models.ApprovalTypeClearance),
			models.ApprovalTypeTSA:             models.ApprovalStatuses(models.ApprovalTypeTSA),
		},
	})
}

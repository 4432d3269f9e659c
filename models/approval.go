package models

import "time"

// Approval types, one record per (member, type) pair.
const (
	ApprovalTypeBackgroundCheck = "background_check"
	ApprovalTypeClearance       = "clearance"
	ApprovalTypeTSA             = "tsa"
)

// Approval statuses. Background check and clearance records use
// Rejected, TSA records use Failed. Any status may be set from any
// prior status; there is no terminal state.
const (
	ApprovalStatusInProgress = "In Progress"
	ApprovalStatusApproved   = "Approved"
	ApprovalStatusRejected   = "Rejected"
	ApprovalStatusFailed     = "Failed"
)

// ApprovalRecord tracks one member's progress through one approval
// workflow. Updates overwrite the row in place (last write wins) and
// stamp the acting user's display name into UpdatedBy.
type ApprovalRecord struct {
	ApprovalID         int        `gorm:"primaryKey;column:approval_id" json:"approval_id"`
	MemberID           int        `gorm:"column:member_id;uniqueIndex:idx_member_approval_type" json:"member_id"`
	ApprovalType       string     `gorm:"column:approval_type;uniqueIndex:idx_member_approval_type" json:"approval_type"`
	Status             string     `gorm:"column:status" json:"status"`
	PivStatus          *string    `gorm:"column:piv_status" json:"piv_status,omitempty"`
	DocumentsCollected bool       `gorm:"column:documents_collected" json:"documents_collected"`
	SubmittedDate      *time.Time `gorm:"column:submitted_date" json:"submitted_date,omitempty"`
	ApprovedDate       *time.Time `gorm:"column:approved_date" json:"approved_date,omitempty"`
	UpdatedBy          string     `gorm:"column:updated_by" json:"updated_by"`
	LastActivity       *time.Time `gorm:"column:last_activity" json:"last_activity,omitempty"`
	CreateAt           *time.Time `gorm:"column:create_at" json:"create_at"`

	// Relations
	Member Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

// ApprovalStatuses returns the status enumeration for an approval type.
func ApprovalStatuses(approvalType string) []string {
	if approvalType == ApprovalTypeTSA {
		return []string{ApprovalStatusInProgress, ApprovalStatusApproved, ApprovalStatusFailed}
	}
	return []string{ApprovalStatusInProgress, ApprovalStatusApproved, ApprovalStatusRejected}
}

// ValidApprovalType reports whether t is one of the known workflows.
func ValidApprovalType(t string) bool {
	switch t {
	case ApprovalTypeBackgroundCheck, ApprovalTypeClearance, ApprovalTypeTSA:
		return true
	}
	return false
}

// ValidApprovalStatus reports whether status is allowed for the type.
func ValidApprovalStatus(approvalType, status string) bool {
	for _, s := range ApprovalStatuses(approvalType) {
		if s == status {
			return true
		}
	}
	return false
}

func (ApprovalRecord) TableName() string {
	return "approval_records"
}

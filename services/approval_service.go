package services

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"internal-portal-api/models"
)

// StatusNotifier is called after an approval status actually changes.
// Failures must be handled inside the notifier; a notification problem
// never fails the update itself.
type StatusNotifier func(member *models.Member, record *models.ApprovalRecord, previous string)

// ApprovalService manages per-member approval workflows (background
// check, clearance, TSA). Updates are keyed by record id and replace
// the row's mutable fields wholesale: two staff editing concurrently
// get last-write-wins, which is an accepted trade-off at this scale.
type ApprovalService struct {
	db     *gorm.DB
	notify StatusNotifier
}

func NewApprovalService(db *gorm.DB, notify StatusNotifier) *ApprovalService {
	return &ApprovalService{db: db, notify: notify}
}

// ForMember lists a member's approval records, one per workflow type.
func (s *ApprovalService) ForMember(memberID int) ([]models.ApprovalRecord, error) {
	var records []models.ApprovalRecord
	if err := s.db.Where("member_id = ?", memberID).
		Order("approval_type ASC").
		Find(&records).Error; err != nil {
		return nil, persistenceErr("load approval records", err)
	}
	return records, nil
}

// Create opens a new approval workflow for a member. Status always
// starts at In Progress regardless of input.
func (s *ApprovalService) Create(memberID int, approvalType string, actor string) (*models.ApprovalRecord, error) {
	if !models.ValidApprovalType(approvalType) {
		return nil, NewValidationError("unknown approval type %q", approvalType)
	}

	var existing models.ApprovalRecord
	err := s.db.Where("member_id = ? AND approval_type = ?", memberID, approvalType).
		First(&existing).Error
	if err == nil {
		return nil, NewValidationError("member already has a %s approval record", approvalType)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistenceErr("check existing approval", err)
	}

	now := time.Now()
	record := models.ApprovalRecord{
		MemberID:      memberID,
		ApprovalType:  approvalType,
		Status:        models.ApprovalStatusInProgress,
		SubmittedDate: &now,
		UpdatedBy:     actor,
		LastActivity:  &now,
		CreateAt:      &now,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, persistenceErr("insert approval record", err)
	}
	return &record, nil
}

// ApprovalUpdate carries the mutable fields of an approval record.
// Every field is overwritten on update; there is no field-level merge.
type ApprovalUpdate struct {
	Status             string
	PivStatus          *string
	DocumentsCollected bool
	SubmittedDate      *time.Time
	ApprovedDate       *time.Time
}

// Update overwrites an approval record in place. Any status may be set
// from any prior status: an approved record can go back to In Progress
// or Rejected on re-review. The acting user's display name is stamped
// into UpdatedBy and LastActivity is set to now.
func (s *ApprovalService) Update(approvalID int, update ApprovalUpdate, actor string) (*models.ApprovalRecord, error) {
	var record models.ApprovalRecord
	if err := s.db.Where("approval_id = ?", approvalID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceErr("load approval record", err)
	}

	if !models.ValidApprovalStatus(record.ApprovalType, update.Status) {
		return nil, NewValidationError("status %q is not valid for %s approvals", update.Status, record.ApprovalType)
	}

	previous := record.Status
	now := time.Now()

	record.Status = update.Status
	record.PivStatus = update.PivStatus
	record.DocumentsCollected = update.DocumentsCollected
	record.SubmittedDate = update.SubmittedDate
	record.ApprovedDate = update.ApprovedDate
	record.UpdatedBy = actor
	record.LastActivity = &now

	if err := s.db.Save(&record).Error; err != nil {
		return nil, persistenceErr("update approval record", err)
	}

	if s.notify != nil && previous != record.Status {
		var member models.Member
		if err := s.db.Where("member_id = ?", record.MemberID).First(&member).Error; err != nil {
			log.Printf("approval notify: member %d lookup failed: %v", record.MemberID, err)
		} else {
			s.notify(&member, &record, previous)
		}
	}

	return &record, nil
}

package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"internal-portal-api/models"
)

func approvalRow(id int, memberID int, approvalType, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"approval_id", "member_id", "approval_type", "status", "updated_by"}).
		AddRow(id, memberID, approvalType, status, "Someone Else")
}

func TestUpdateAllowsAnyStatusTransition(t *testing.T) {
	// No transition is terminal: approved records can be reopened,
	// rejected ones re-approved.
	transitions := []struct {
		from string
		to   string
	}{
		{models.ApprovalStatusInProgress, models.ApprovalStatusApproved},
		{models.ApprovalStatusInProgress, models.ApprovalStatusRejected},
		{models.ApprovalStatusApproved, models.ApprovalStatusRejected},
		{models.ApprovalStatusApproved, models.ApprovalStatusInProgress},
		{models.ApprovalStatusRejected, models.ApprovalStatusApproved},
	}

	for _, tr := range transitions {
		t.Run(tr.from+" to "+tr.to, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectQuery("SELECT .* FROM `approval_records` WHERE approval_id = ?").
				WillReturnRows(approvalRow(5, 3, models.ApprovalTypeBackgroundCheck, tr.from))
			mock.ExpectBegin()
			mock.ExpectExec("UPDATE `approval_records`").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			svc := NewApprovalService(db, nil)
			record, err := svc.Update(5, ApprovalUpdate{Status: tr.to}, "Pat Reviewer")
			if err != nil {
				t.Fatalf("Update(%s -> %s) returned error: %v", tr.from, tr.to, err)
			}
			if record.Status != tr.to {
				t.Fatalf("status = %q, want %q", record.Status, tr.to)
			}
			if record.UpdatedBy != "Pat Reviewer" {
				t.Fatalf("updated_by = %q, want acting user's display name", record.UpdatedBy)
			}
			if record.LastActivity == nil {
				t.Fatal("last_activity was not stamped")
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestUpdateRejectsStatusOutsideTypeEnumeration(t *testing.T) {
	db, mock := newMockDB(t)

	// TSA records use Failed, not Rejected.
	mock.ExpectQuery("SELECT .* FROM `approval_records` WHERE approval_id = ?").
		WillReturnRows(approvalRow(9, 3, models.ApprovalTypeTSA, models.ApprovalStatusInProgress))

	svc := NewApprovalService(db, nil)
	_, err := svc.Update(9, ApprovalUpdate{Status: models.ApprovalStatusRejected}, "Pat Reviewer")

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateUnknownRecordIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `approval_records` WHERE approval_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"approval_id"}))

	svc := NewApprovalService(db, nil)
	if _, err := svc.Update(404, ApprovalUpdate{Status: models.ApprovalStatusApproved}, "Pat"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateNotifiesOnStatusChangeOnly(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `approval_records` WHERE approval_id = ?").
		WillReturnRows(approvalRow(5, 3, models.ApprovalTypeClearance, models.ApprovalStatusInProgress))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `approval_records`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `members` WHERE member_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"member_id", "first_name", "last_name", "email"}).
			AddRow(3, "Dana", "Field", "dana@example.com"))

	var notified bool
	var gotPrevious string
	svc := NewApprovalService(db, func(member *models.Member, record *models.ApprovalRecord, previous string) {
		notified = true
		gotPrevious = previous
	})

	if _, err := svc.Update(5, ApprovalUpdate{Status: models.ApprovalStatusApproved}, "Pat"); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !notified {
		t.Fatal("expected notifier to fire on status change")
	}
	if gotPrevious != models.ApprovalStatusInProgress {
		t.Fatalf("previous = %q, want In Progress", gotPrevious)
	}
}

func TestUpdateDoesNotNotifyWhenStatusUnchanged(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `approval_records` WHERE approval_id = ?").
		WillReturnRows(approvalRow(5, 3, models.ApprovalTypeClearance, models.ApprovalStatusApproved))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `approval_records`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := NewApprovalService(db, func(member *models.Member, record *models.ApprovalRecord, previous string) {
		t.Fatal("notifier fired without a status change")
	})

	if _, err := svc.Update(5, ApprovalUpdate{Status: models.ApprovalStatusApproved}, "Pat"); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
}

func TestCreateStartsInProgress(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `approval_records` WHERE member_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"approval_id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `approval_records`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	svc := NewApprovalService(db, nil)
	record, err := svc.Create(3, models.ApprovalTypeTSA, "Pat")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if record.Status != models.ApprovalStatusInProgress {
		t.Fatalf("status = %q, want In Progress", record.Status)
	}
}

func TestCreateRejectsDuplicateWorkflow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `approval_records` WHERE member_id = ?").
		WillReturnRows(approvalRow(5, 3, models.ApprovalTypeTSA, models.ApprovalStatusInProgress))

	svc := NewApprovalService(db, nil)
	_, err := svc.Create(3, models.ApprovalTypeTSA, "Pat")

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	db, _ := newMockDB(t)

	svc := NewApprovalService(db, nil)
	_, err := svc.Create(3, "polygraph", "Pat")

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

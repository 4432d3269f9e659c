package services

import (
	"context"
	"errors"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"internal-portal-api/models"
)

type fakePresigner struct {
	failKeys map[string]bool
}

func (f *fakePresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.failKeys[*params.Key] {
		return nil, errors.New("presign unavailable")
	}
	return &v4.PresignedHTTPRequest{URL: "https://signed.example/" + *params.Key}, nil
}

func TestResolveDownloadURLsToleratesPartialFailure(t *testing.T) {
	presigner := &fakePresigner{failKeys: map[string]bool{"member/3/broken.pdf": true}}
	svc := NewAttachmentService(nil, nil, presigner, "attachments", time.Minute)

	attachments := []models.Attachment{
		{AttachmentID: 1, ObjectKey: "member/3/a.pdf"},
		{AttachmentID: 2, ObjectKey: "member/3/broken.pdf"},
		{AttachmentID: 3, ObjectKey: "member/3/b.pdf"},
	}

	svc.ResolveDownloadURLs(context.Background(), attachments)

	if attachments[0].DownloadURL != "https://signed.example/member/3/a.pdf" {
		t.Fatalf("first URL = %q, want resolved link", attachments[0].DownloadURL)
	}
	if attachments[1].DownloadURL != "" {
		t.Fatalf("failed lookup should leave URL empty, got %q", attachments[1].DownloadURL)
	}
	if attachments[2].DownloadURL != "https://signed.example/member/3/b.pdf" {
		t.Fatalf("third URL = %q, want resolved link", attachments[2].DownloadURL)
	}
}

func TestResolveDownloadURLsNoopWithoutPresigner(t *testing.T) {
	svc := NewAttachmentService(nil, nil, nil, "attachments", time.Minute)

	attachments := []models.Attachment{{AttachmentID: 1, ObjectKey: "member/3/a.pdf"}}
	svc.ResolveDownloadURLs(context.Background(), attachments)

	if attachments[0].DownloadURL != "" {
		t.Fatalf("expected unresolved URL, got %q", attachments[0].DownloadURL)
	}
}

func TestUploadRejectsUnknownParentType(t *testing.T) {
	svc := NewAttachmentService(nil, nil, nil, "attachments", time.Minute)

	_, err := svc.Upload(context.Background(), UploadInput{
		ParentType: "warehouse",
		ParentID:   1,
		FileName:   "doc.pdf",
	})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUploadRequiresFileName(t *testing.T) {
	svc := NewAttachmentService(nil, nil, nil, "attachments", time.Minute)

	_, err := svc.Upload(context.Background(), UploadInput{
		ParentType: models.ParentTypeMember,
		ParentID:   1,
	})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

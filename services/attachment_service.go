package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"internal-portal-api/models"
)

// ObjectPresigner presigns GET requests against the attachment bucket.
type ObjectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ObjectStore covers the direct S3 calls the service makes.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// AttachmentService stores attachment rows and resolves their
// time-limited download links against object storage.
type AttachmentService struct {
	db        *gorm.DB
	store     ObjectStore
	presigner ObjectPresigner
	bucket    string
	linkTTL   time.Duration
}

func NewAttachmentService(db *gorm.DB, store ObjectStore, presigner ObjectPresigner, bucket string, linkTTL time.Duration) *AttachmentService {
	if linkTTL <= 0 {
		linkTTL = 15 * time.Minute
	}
	return &AttachmentService{db: db, store: store, presigner: presigner, bucket: bucket, linkTTL: linkTTL}
}

// ForParent lists a record's attachments with download URLs resolved.
func (s *AttachmentService) ForParent(ctx context.Context, parentType string, parentID int) ([]models.Attachment, error) {
	var attachments []models.Attachment
	if err := s.db.Where("parent_type = ? AND parent_id = ?", parentType, parentID).
		Order("attachment_id DESC").
		Find(&attachments).Error; err != nil {
		return nil, persistenceErr("load attachments", err)
	}

	s.ResolveDownloadURLs(ctx, attachments)
	return attachments, nil
}

// ResolveDownloadURLs fills DownloadURL on each attachment via a batch
// of independent concurrent presign calls. A failed lookup is logged
// and leaves that one attachment's URL empty; the rest still resolve.
func (s *AttachmentService) ResolveDownloadURLs(ctx context.Context, attachments []models.Attachment) {
	if s.presigner == nil {
		return
	}

	var wg sync.WaitGroup
	for i := range attachments {
		wg.Add(1)
		go func(a *models.Attachment) {
			defer wg.Done()
			req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(a.ObjectKey),
			}, func(o *s3.PresignOptions) { o.Expires = s.linkTTL })
			if err != nil {
				log.Printf("presign failed for attachment %d (%s): %v", a.AttachmentID, a.ObjectKey, err)
				return
			}
			a.DownloadURL = req.URL
		}(&attachments[i])
	}
	wg.Wait()
}

// UploadInput describes one incoming file.
type UploadInput struct {
	ParentType  string
	ParentID    int
	FileName    string
	MimeType    string
	Size        int64
	Description *string
	Actor       string
	Body        io.Reader
}

// Upload streams the file into the bucket under a fresh key and records
// the attachment row.
func (s *AttachmentService) Upload(ctx context.Context, input UploadInput) (*models.Attachment, error) {
	if !models.ValidParentType(input.ParentType) {
		return nil, NewValidationError("unknown parent type %q", input.ParentType)
	}
	if input.FileName == "" {
		return nil, NewValidationError("file name is required")
	}

	key := fmt.Sprintf("%s/%d/%s%s", input.ParentType, input.ParentID, uuid.NewString(), filepath.Ext(input.FileName))

	if s.store != nil {
		if _, err := s.store.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(s.bucket),
			Key:           aws.String(key),
			Body:          input.Body,
			ContentType:   aws.String(input.MimeType),
			ContentLength: aws.Int64(input.Size),
		}); err != nil {
			return nil, persistenceErr("store attachment object", err)
		}
	}

	now := time.Now()
	attachment := models.Attachment{
		ParentType:  input.ParentType,
		ParentID:    input.ParentID,
		ObjectKey:   key,
		FileName:    input.FileName,
		Description: input.Description,
		MimeType:    input.MimeType,
		FileSize:    input.Size,
		UploadedBy:  input.Actor,
		CreateAt:    &now,
	}
	if err := s.db.Create(&attachment).Error; err != nil {
		return nil, persistenceErr("insert attachment", err)
	}
	return &attachment, nil
}

// Delete removes the storage object and then the row. The two steps are
// not atomic: a storage failure is logged and the row is still removed
// so the listing stays consistent with what staff see.
func (s *AttachmentService) Delete(ctx context.Context, attachmentID int) error {
	var attachment models.Attachment
	if err := s.db.Where("attachment_id = ?", attachmentID).First(&attachment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return persistenceErr("load attachment", err)
	}

	if s.store != nil {
		if _, err := s.store.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(attachment.ObjectKey),
		}); err != nil {
			log.Printf("delete object failed for attachment %d (%s): %v", attachment.AttachmentID, attachment.ObjectKey, err)
		}
	}

	if err := s.db.Delete(&models.Attachment{}, "attachment_id = ?", attachmentID).Error; err != nil {
		return persistenceErr("delete attachment", err)
	}
	return nil
}

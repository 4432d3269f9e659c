package config

import (
	"context"
	"log"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	// S3Client performs direct object operations (put, delete).
	S3Client *s3.Client
	// S3Presigner signs time-limited download URLs.
	S3Presigner *s3.PresignClient
	// AttachmentBucket holds uploaded attachment objects.
	AttachmentBucket string
)

// InitStorage wires the S3 client used for attachment objects. Missing
// configuration is non-fatal: attachment uploads and links degrade to
// unresolved, everything else keeps working.
func InitStorage() {
	AttachmentBucket = os.Getenv("ATTACHMENT_BUCKET")
	if AttachmentBucket == "" {
		log.Println("ATTACHMENT_BUCKET not set, attachment storage disabled")
		return
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Printf("Warning: failed to load AWS config, attachment storage disabled: %v", err)
		return
	}

	S3Client = s3.NewFromConfig(cfg)
	S3Presigner = s3.NewPresignClient(S3Client)
	log.Println("Attachment storage connected, bucket:", AttachmentBucket)
}

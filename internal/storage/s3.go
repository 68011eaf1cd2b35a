package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	appconfig "github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/config"
)

const (
	// MaxResumeSize is the maximum allowed resume upload size (5MB).
	MaxResumeSize = 5 * 1024 * 1024
	// FolderResumes is the S3 prefix for resume objects.
	FolderResumes = "resumes"
)

// AllowedResumeExtensions maps permitted resume file extensions to their
// MIME types.
var AllowedResumeExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// S3 provides resume object operations against a single bucket.
type S3 struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
}

// NewS3 creates an S3 client from config. Static credentials from config
// take precedence; otherwise the default AWS credential chain applies.
func NewS3(ctx context.Context, cfg appconfig.S3) (*S3, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	} else {
		log.Warn().Msg("S3 client using default credential chain (AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY not set)")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 5 * 1024 * 1024
	})
	log.Info().Str("region", cfg.Region).Str("bucket", cfg.Bucket).Msg("S3 resume storage ready")
	return &S3{client: client, uploader: uploader, bucket: cfg.Bucket}, nil
}

// ValidateResumeFilename reports whether the filename carries an allowed
// resume extension.
func ValidateResumeFilename(filename string) bool {
	_, ok := AllowedResumeExtensions[strings.ToLower(path.Ext(filename))]
	return ok
}

// ContentTypeForFilename returns the MIME type for a resume filename.
func ContentTypeForFilename(filename string) string {
	if ct, ok := AllowedResumeExtensions[strings.ToLower(path.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ResumeKey returns the object key: resumes/{userID}-{suffix}{ext}.
func ResumeKey(userID uint, suffix, filename string) string {
	return path.Join(FolderResumes, fmt.Sprintf("%d-%s%s", userID, suffix, strings.ToLower(path.Ext(filename))))
}

// Upload streams a resume to the bucket.
func (s *S3) Upload(ctx context.Context, key, contentType string, body io.Reader, contentLength int64) error {
	var contentLengthPtr *int64
	if contentLength > 0 {
		contentLengthPtr = &contentLength
	}
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: contentLengthPtr,
	})
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	return nil
}

// GetObjectStream returns the object body, content type and length for
// streaming back to the client. Caller must close the body.
func (s *S3) GetObjectStream(ctx context.Context, key string) (body io.ReadCloser, contentType string, contentLength int64, err error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", 0, err
	}
	ct := ""
	if out.ContentType != nil {
		ct = *out.ContentType
	}
	length := int64(-1)
	if out.ContentLength != nil {
		length = *out.ContentLength
	}
	return out.Body, ct, length, nil
}

// DeleteObject removes an object from the bucket.
func (s *S3) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

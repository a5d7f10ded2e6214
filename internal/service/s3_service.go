package service

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/fas_dashboard/internal/config"
)

// ObjectUploader stores an export object and returns its location.
type ObjectUploader interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// s3PutAPI is the subset of the S3 client used for uploads.
type s3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Service archives exports to a bucket. Credentials come from the default
// AWS chain (environment, shared config, instance role).
type S3Service struct {
	client s3PutAPI
	bucket string
	region string
	prefix string
}

// NewS3Service creates an S3Service for cfg.
func NewS3Service(ctx context.Context, cfg *config.ExportConfig) (*S3Service, error) {
	if cfg == nil || cfg.Bucket == "" {
		return nil, fmt.Errorf("export bucket is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Service{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: cfg.Prefix,
	}, nil
}

// Upload writes data under the configured prefix.
func (s *S3Service) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	key := path.Join(s.prefix, name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Error().Err(err).Str("bucket", s.bucket).Str("key", key).Msg("Failed to upload export to S3")
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Info().Str("bucket", s.bucket).Str("key", key).Int("bytes", len(data)).Msg("Export uploaded to S3")
	return s.GetObjectURL(key), nil
}

// GetObjectURL returns the URL for an S3 object.
func (s *S3Service) GetObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

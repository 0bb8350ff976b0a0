package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/rpupo63/bilingual-portfolio-backend/config"
)

// S3Storage keeps uploaded images in an S3 bucket. Used when the site runs
// on a host without persistent local disk.
type S3Storage struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Storage builds S3-backed storage from configuration.
// Config keys: S3_BUCKET (required), S3_PREFIX (default "images").
// Credentials and region come from the standard AWS environment.
func NewS3Storage(ctx context.Context, cfg map[string]string) (*S3Storage, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required when STORAGE_BACKEND=s3")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		prefix: config.GetString(cfg, "S3_PREFIX", "images"),
	}, nil
}

func (s *S3Storage) key(p string) string {
	return path.Join(s.prefix, p)
}

func (s *S3Storage) Store(ctx context.Context, p string, r io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to s3: %w", p, err)
	}
	return nil
}

func (s *S3Storage) Remove(ctx context.Context, p string) error {
	// DeleteObject succeeds for missing keys, which matches the idempotent
	// Remove contract.
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s from s3: %w", p, err)
	}
	return nil
}

func (s *S3Storage) Exists(ctx context.Context, p string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s in s3: %w", p, err)
	}
	return true, nil
}

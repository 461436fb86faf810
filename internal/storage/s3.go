package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store implements ObjectStore against S3 (or any S3-compatible endpoint).
type S3Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	log       *slog.Logger
}

// NewS3Store loads the default AWS config chain for the given region.
func NewS3Store(ctx context.Context, region string, logger *slog.Logger) (*S3Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		log:       logger,
	}, nil
}

func (s *S3Store) SignPutURL(ctx context.Context, bucket, key, contentType string, ttl time.Duration) (SignedUpload, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		s.log.Error("storage.sign_put_failed", "bucket", bucket, "key", key, "error", err)
		return SignedUpload{}, fmt.Errorf("presign put: %w", err)
	}
	return SignedUpload{
		URL:       req.URL,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

func (s *S3Store) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.log.Error("storage.download_failed", "bucket", bucket, "key", key, "error", err)
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			s.log.Warn("storage.body_close_error", "error", err)
		}
	}(out.Body)

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object body: %w", err)
	}
	return data, nil
}

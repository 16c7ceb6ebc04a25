package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/edukite/face-auth/internal/config"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/models"
)

// s3API is the subset of the S3 client used by the store. Kept small so
// tests can substitute a fake without a live endpoint.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store stores face image payloads in an S3-compatible bucket
// (AWS S3, MinIO, etc.). Objects are keyed "faces/<identity id>".
type S3Store struct {
	client       s3API
	bucket       string
	baseEndpoint string
	region       string
	logger       *logger.Logger
}

// NewS3Store builds an S3-backed [BlobStore] from the blob configuration.
// Static credentials are used when provided; otherwise the default AWS
// credential chain applies. BaseEndpoint, when set, points the client at a
// non-AWS endpoint such as MinIO.
func NewS3Store(ctx context.Context, cfg config.S3, log *logger.Logger) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	log.Debug().Str("bucket", cfg.Bucket).Msg("creating S3 blob store")
	return &S3Store{
		client:       client,
		bucket:       cfg.Bucket,
		baseEndpoint: cfg.BaseEndpoint,
		region:       cfg.Region,
		logger:       log,
	}, nil
}

func (s *S3Store) objectKey(identityID string) string {
	return "faces/" + identityID
}

func (s *S3Store) objectURL(key string) string {
	if s.baseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.baseEndpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// Upload stores data under "faces/<identity id>" and returns the object
// locator.
func (s *S3Store) Upload(ctx context.Context, identityID string, data []byte) (models.BlobRef, error) {
	key := s.objectKey(identityID)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*S3Store.Upload").Str("key", key).Msg("error uploading object")
		return models.BlobRef{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return models.BlobRef{
		ObjectRef: key,
		URL:       s.objectURL(key),
	}, nil
}

// Download retrieves the payload stored under objectRef.
func (s *S3Store) Download(ctx context.Context, objectRef string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectRef),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrBlobNotFound
		}
		s.logger.Err(err).Str("func", "*S3Store.Download").Str("key", objectRef).Msg("error downloading object")
		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	return data, nil
}

// Delete removes the object stored under objectRef. S3 delete is
// idempotent, so a missing object is not an error.
func (s *S3Store) Delete(ctx context.Context, objectRef string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectRef),
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*S3Store.Delete").Str("key", objectRef).Msg("error deleting object")
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	return nil
}

package storage

import (
	"context"
	"io"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store keeps listing documents in an S3 bucket.
type S3Store struct {
	bucket   string
	maxBytes int64
	client   *s3.Client
}

var _ portsrepo.DocumentStore = (*S3Store)(nil)

func NewS3Store(ctx context.Context, region, bucket string, maxBytes int64) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &S3Store{
		bucket:   bucket,
		maxBytes: maxBytes,
		client:   s3.NewFromConfig(cfg),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key, fileName string, size int64, body io.Reader) (string, error) {
	contentType, err := checkUpload(fileName, size, s.maxBytes)
	if err != nil {
		return "", err
	}

	fullKey := BasePath + key
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(fullKey),
		Body:          io.LimitReader(body, size),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to upload document", err)
	}
	return fullKey, nil
}

func (s *S3Store) Delete(ctx context.Context, fileRef string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileRef),
	})
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete document object", err)
	}
	return nil
}

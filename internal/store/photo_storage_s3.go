package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3PhotoStorage uploads profile pictures to an S3-compatible bucket.
type s3PhotoStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
	now       func() time.Time
	logger    *logger.Logger
}

// NewS3PhotoStorage builds the client from static credentials. Endpoint
// may point at any S3-compatible service; path-style addressing is used.
func NewS3PhotoStorage(ctx context.Context, cfg config.Photos, log *logger.Logger) (PhotoStorage, error) {
	if cfg.Bucket == "" || cfg.PublicURL == "" {
		return nil, fmt.Errorf("missing required photo bucket configuration")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	log.Debug().Str("bucket", cfg.Bucket).Msg("created s3 photo storage")
	return &s3PhotoStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
		now:       time.Now,
		logger:    log,
	}, nil
}

// UploadPhoto stores the photo under profilePictures/ and returns the public
// download URL of the object.
func (s *s3PhotoStorage) UploadPhoto(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	content, err := io.ReadAll(r)
	if err != nil {
		return "", wrapErr(ErrPhotoUpload, err)
	}
	if len(content) == 0 {
		return "", ErrEmptyPhoto
	}

	objectName := photoObjectName(name, contentType, s.now())
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(photoPrefix + "/" + objectName),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3PhotoStorage.UploadPhoto").Msg("error uploading photo")
		return "", wrapErr(ErrPhotoUpload, err)
	}

	return publicPhotoURL(s.publicURL, objectName), nil
}

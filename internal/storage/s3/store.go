package s3

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/renoquote/quote-backend/config"
	"github.com/renoquote/quote-backend/internal/quotes/domain"
)

// PutObjectAPI is the slice of the S3 client the store needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store persists uploaded project photos in an S3-compatible bucket.
// Caller filenames are never used as keys; only their extension survives,
// attached to a generated uuid, so uploads cannot collide or traverse paths.
type Store struct {
	client        PutObjectAPI
	bucket        string
	region        string
	publicBaseURL string
}

// New builds a store over a real S3 client. A non-empty cfg.Endpoint points
// the client at a minio-style deployment.
func New(ctx context.Context, cfg *config.StorageConfig) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewWithClient(client, cfg.Bucket, cfg.Region, cfg.PublicBaseURL), nil
}

// NewWithClient builds a store over any PutObjectAPI. Tests inject a double.
func NewWithClient(client PutObjectAPI, bucket, region, publicBaseURL string) *Store {
	return &Store{
		client:        client,
		bucket:        bucket,
		region:        region,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Store writes the image bytes under a collision-safe key and returns the
// public URL. The write is a single PutObject: either the object exists in
// full afterwards or no reference is returned.
func (s *Store) Store(ctx context.Context, data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !domain.AllowedImageExt(filename) {
		return "", fmt.Errorf("file type %q not allowed", ext)
	}

	key := storageKey(ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mime.TypeByExtension(ext)),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *Store) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// storageKey partitions uploads by date and suffixes a uuid, keeping only
// the original extension.
func storageKey(ext string) string {
	d := time.Now()
	return fmt.Sprintf("uploads/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

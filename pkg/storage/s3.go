package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"guesthouse-booking/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// Uploader stores images in the public bucket and returns their URLs.
type Uploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
}

type S3Uploader struct {
	bucket string
	region string
	client *s3.Client
	log    *zap.Logger
}

func NewS3Uploader(config utils.StorageConfig, log *zap.Logger) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(config.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS configuration: %w", err)
	}

	if config.Bucket == "" {
		return nil, fmt.Errorf("storage bucket name is not configured")
	}

	return &S3Uploader{
		bucket: config.Bucket,
		region: config.Region,
		client: s3.NewFromConfig(cfg),
		log:    log.With(zap.String("storage", "s3")),
	}, nil
}

// Upload puts a single object under folder and returns its public URL. Keys
// are prefixed with a millisecond timestamp so repeated uploads of the same
// filename never collide.
func (u *S3Uploader) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	key := path.Join(folder, fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename))

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		u.log.Error("Failed to upload object",
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)

	u.log.Info("Object uploaded",
		zap.String("key", key),
		zap.String("url", url),
	)

	return url, nil
}

package aws

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Uploader stores uploaded assets in a single bucket.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(cfg sdkaws.Config, bucket string) *S3Uploader {
	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: cfg.Region,
	}
}

// Upload writes the body under a random key below the given folder and
// returns the public object URL. The original filename only contributes its
// extension.
func (u *S3Uploader) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), path.Ext(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

// PresignPut generates a presigned PUT URL so clients can upload directly.
func (u *S3Uploader) PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error) {
	presigner := s3.NewPresignClient(u.client)
	presigned, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &u.bucket,
		Key:    &key,
	}, func(o *s3.PresignOptions) {
		o.Expires = expiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign put object: %w", err)
	}
	return presigned.URL, nil
}

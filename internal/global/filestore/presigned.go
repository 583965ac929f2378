package filestore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignedDownloadURL signs a time-limited GET for a stored object.
// Premium resource access goes through this so the bucket can stay
// private.
func (fs *FileStore) PresignedDownloadURL(ctx context.Context, key string, expiresIn int64) (string, error) {
	if fs.s3Client == nil {
		if err := fs.initS3(ctx); err != nil {
			return "", err
		}
	}

	if expiresIn <= 0 {
		expiresIn = 3600 // 1 hour
	}

	presignClient := s3.NewPresignClient(fs.s3Client)

	presignedReq, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(fs.Bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(expiresIn) * time.Second
	})

	if err != nil {
		return "", fmt.Errorf("presign download url: %w", err)
	}

	return presignedReq.URL, nil
}

package filestore

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	appconfig "glowup-diaries/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// FileStore holds resource files in S3-compatible object storage.
type FileStore struct {
	Endpoint     string
	BaseURL      string
	Bucket       string
	Region       string
	Prefix       string
	UsePathStyle bool

	s3Client *s3.Client
	uploader *manager.Uploader
}

var instance *FileStore

func Init() {
	cfg := appconfig.Get().S3
	instance = &FileStore{
		Endpoint:     cfg.Endpoint,
		BaseURL:      cfg.BaseURL,
		Bucket:       cfg.Bucket,
		Region:       cfg.Region,
		Prefix:       cfg.Prefix,
		UsePathStyle: cfg.UsePathStyle,
	}
}

func Get() *FileStore {
	return instance
}

func (fs *FileStore) initS3(ctx context.Context) error {
	cfg := appconfig.Get().S3

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(fs.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return fmt.Errorf("load s3 config: %w", err)
	}

	fs.s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if fs.Endpoint != "" {
			o.BaseEndpoint = aws.String(fs.Endpoint)
		}
		o.UsePathStyle = fs.UsePathStyle
	})
	fs.uploader = manager.NewUploader(fs.s3Client)
	return nil
}

// Upload stores an uploaded file and returns its public URL and object
// key. Object keys are timestamped to avoid collisions between files
// with the same name.
func (fs *FileStore) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (fileURL, key string, err error) {
	if fs.s3Client == nil {
		if err = fs.initS3(ctx); err != nil {
			return "", "", err
		}
	}
	if fs.Bucket == "" {
		return "", "", fmt.Errorf("s3 bucket is not configured")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	ext := strings.ToLower(path.Ext(fileHeader.Filename))
	key = path.Join(strings.Trim(fs.Prefix, "/"), fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	key = strings.TrimLeft(key, "/")

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = fs.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(fs.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("upload to s3: %w", err)
	}

	return fs.objectURL(key), key, nil
}

func (fs *FileStore) objectURL(key string) string {
	base := strings.TrimRight(fs.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(fs.Endpoint, "/")
	}
	if fs.UsePathStyle {
		return base + "/" + fs.Bucket + "/" + key
	}
	return base + "/" + key
}

package media

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"video-tube/domain/repository"
	"video-tube/infrastructure/logger"
)

// ObjectStore uploads media files to an S3-compatible object store and hands
// back durable URLs. It is the uploadOnCloudinary equivalent of this service.
type ObjectStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewObjectStore(endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (repository.IMediaStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("media: create client: %w", err)
	}
	if publicURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, endpoint)
	}
	return &ObjectStore{client: client, bucket: bucket, publicURL: publicURL}, nil
}

func (s *ObjectStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("media: check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("media: create bucket: %w", err)
		}
	}
	return nil
}

func (s *ObjectStore) Upload(ctx context.Context, localPath, contentType string) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	ext := filepath.Ext(localPath)
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	objectName := fmt.Sprintf("media/%s%s", uuid.NewString(), ext)

	_, err := s.client.FPutObject(ctx, s.bucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("media: upload %s: %w", objectName, err)
	}

	logger.GetLogger().WithField("object", objectName).Debug("Media object uploaded")
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

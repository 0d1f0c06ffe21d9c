package storage

import (
	"bytes"
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	minioStorageServiceInstance contracts.StorageService
	onceMinioStorageService     sync.Once
)

type minioStorageService struct {
	client *minio.Client
	Log    *zap.Logger
}

func NewMinioStorageService(client *minio.Client, logger *zap.Logger) contracts.StorageService {
	onceMinioStorageService.Do(func() {
		minioStorageServiceInstance = &minioStorageService{
			client: client,
			Log:    logger,
		}
	})
	return minioStorageServiceInstance
}

func (s *minioStorageService) UploadObject(ctx context.Context, bucketName, fileName, contentType string, content []byte) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("minioStorageService.UploadObject called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("bucket_name", bucketName),
		zap.String("file_name", fileName),
	)

	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}
	if !exists {
		err = s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return exceptions.ErrMinioCreateObject(err, bucketName)
		}
	}

	reader := bytes.NewReader(content)
	_, err = s.client.PutObject(ctx, bucketName, fileName, reader, int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.Log.Error("minioStorageService.UploadObject error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return nil
}

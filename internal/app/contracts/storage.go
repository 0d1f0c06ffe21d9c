package contracts

import "context"

type StorageService interface {
	UploadObject(ctx context.Context, bucketName, fileName, contentType string, content []byte) error
}

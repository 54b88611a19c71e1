package storage

import (
	"context"
	"fmt"
	"hospital-records-service/internal/app/contracts"
	"hospital-records-service/internal/app/models"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/exceptions"
	"hospital-records-service/internal/pkg/utils"
	"io"
	"mime/multipart"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

// EnsureMinioBucket creates the bucket on first start.
func EnsureMinioBucket(ctx context.Context, minioClient *minio.Client, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return exceptions.ErrMinioCreateBucket(err, bucketName)
	}
	if exists {
		return nil
	}

	err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		return exceptions.ErrMinioCreateBucket(err, bucketName)
	}
	return nil
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, contentType string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	fileName := utils.GenerateFileName(fileHeader.Filename, time.Now())
	m.Log.Info("minioStorage.UploadFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
		zap.Int64(constvars.LoggingFileSizeKey, fileHeader.Size),
	)

	_, err := m.MinioClient.PutObject(ctx, m.BucketName, fileName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return fileName, nil
}

func (m *minioStorage) OpenFile(ctx context.Context, fileName string) (*models.StoredFile, error) {
	if !isSafeFileName(fileName) {
		return nil, exceptions.ErrStorageFileNotFound(fmt.Errorf("rejected file name %q", fileName), fileName)
	}

	object, err := m.MinioClient.GetObject(ctx, m.BucketName, fileName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}

	info, err := object.Stat()
	if err != nil {
		object.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, exceptions.ErrStorageFileNotFound(err, fileName)
		}
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}

	return &models.StoredFile{
		Content:     object,
		Name:        fileName,
		ContentType: info.ContentType,
		Size:        info.Size,
		ModTime:     info.LastModified,
	}, nil
}

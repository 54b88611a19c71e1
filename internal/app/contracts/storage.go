package contracts

import (
	"context"
	"hospital-records-service/internal/app/models"
	"io"
	"mime/multipart"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, contentType string) (string, error)
	OpenFile(ctx context.Context, fileName string) (*models.StoredFile, error)
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"hospital-records-service/internal/app/contracts"
	"hospital-records-service/internal/app/models"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/exceptions"
	"hospital-records-service/internal/pkg/utils"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

type localStorage struct {
	Root *os.Root
	Log  *zap.Logger
}

// NewLocalStorage stores uploads as files under uploadDir, creating it when
// missing. All file access goes through an os.Root so names cannot escape it.
func NewLocalStorage(uploadDir string, logger *zap.Logger) (contracts.Storage, error) {
	err := os.MkdirAll(uploadDir, 0o755)
	if err != nil {
		return nil, exceptions.ErrLocalStorageWrite(err)
	}
	root, err := os.OpenRoot(uploadDir)
	if err != nil {
		return nil, exceptions.ErrLocalStorageOpen(err)
	}
	return &localStorage{
		Root: root,
		Log:  logger,
	}, nil
}

func (s *localStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, contentType string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	fileName := utils.GenerateFileName(fileHeader.Filename, time.Now())
	s.Log.Info("localStorage.UploadFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
		zap.Int64(constvars.LoggingFileSizeKey, fileHeader.Size),
	)

	destination, err := s.Root.OpenFile(fileName, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", exceptions.ErrLocalStorageWrite(err)
	}

	_, err = io.Copy(destination, file)
	closeErr := destination.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		s.Root.Remove(fileName)
		return "", exceptions.ErrLocalStorageWrite(err)
	}

	s.Log.Info("localStorage.UploadFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)
	return fileName, nil
}

func (s *localStorage) OpenFile(ctx context.Context, fileName string) (*models.StoredFile, error) {
	if !isSafeFileName(fileName) {
		return nil, exceptions.ErrStorageFileNotFound(fmt.Errorf("rejected file name %q", fileName), fileName)
	}

	file, err := s.Root.Open(fileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, exceptions.ErrStorageFileNotFound(err, fileName)
		}
		return nil, exceptions.ErrLocalStorageOpen(err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, exceptions.ErrLocalStorageOpen(err)
	}
	if info.IsDir() {
		file.Close()
		return nil, exceptions.ErrStorageFileNotFound(fmt.Errorf("%s is a directory", fileName), fileName)
	}

	return &models.StoredFile{
		Content:     file,
		Name:        fileName,
		ContentType: mime.TypeByExtension(filepath.Ext(fileName)),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
	}, nil
}

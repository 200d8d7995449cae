package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"filedrive/config"
	"filedrive/logger"
	"filedrive/models"
	"filedrive/repositories"

	"gorm.io/gorm"
)

type FileService interface {
	ListFiles(ctx context.Context, userID uint, folderID *uint) ([]models.File, error)
	UploadFile(ctx context.Context, userID uint, folderID *uint, file multipart.File, header *multipart.FileHeader) (models.File, error)
	// GetDownload returns the metadata row and the absolute blob path,
	// verified to exist on disk.
	GetDownload(ctx context.Context, userID uint, fileID uint) (models.File, string, error)
	DeleteFile(ctx context.Context, userID uint, fileID uint) error
}

// fileService has no transactional paths: every metadata mutation is a
// single statement, and the disk write deliberately sits outside any
// database transaction.
type fileService struct {
	folders repositories.FolderRepository
	files   repositories.FileRepository
	storage config.StorageConfig
}

func NewFileService(folders repositories.FolderRepository, files repositories.FileRepository, storage config.StorageConfig) FileService {
	return &fileService{folders: folders, files: files, storage: storage}
}

func (s *fileService) absPath(storagePath string) string {
	return filepath.Join(s.storage.BasePath, storagePath)
}

func (s *fileService) ListFiles(ctx context.Context, userID uint, folderID *uint) ([]models.File, error) {
	list, err := s.files.ListByFolder(ctx, nil, userID, folderID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "Failed to list files", err)
	}
	return list, nil
}

func (s *fileService) UploadFile(ctx context.Context, userID uint, folderID *uint, file multipart.File, header *multipart.FileHeader) (models.File, error) {
	if header.Size > s.storage.MaxFileSize {
		return models.File{}, newAppError(http.StatusBadRequest, "File too large", nil)
	}

	if folderID != nil {
		if _, err := s.folders.GetByIDAndUser(ctx, nil, *folderID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.File{}, newAppError(http.StatusNotFound, "Folder not found", nil)
			}
			return models.File{}, newAppError(http.StatusInternalServerError, "Upload failed", err)
		}
	}

	checksum, size, err := checksumContent(file)
	if err != nil {
		return models.File{}, newAppError(http.StatusInternalServerError, "Upload failed", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return models.File{}, newAppError(http.StatusInternalServerError, "Upload failed", err)
	}

	// Fast-path duplicate check; the unique index on (user_id, checksum)
	// closes the race below.
	_, err = s.files.FindByUserAndChecksum(ctx, nil, userID, checksum)
	if err == nil {
		return models.File{}, newAppError(http.StatusConflict, "File already exists", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.File{}, newAppError(http.StatusInternalServerError, "Upload failed", err)
	}

	userDir := fmt.Sprintf("%d", userID)
	if err := os.MkdirAll(filepath.Join(s.storage.BasePath, userDir), 0o755); err != nil {
		return models.File{}, newAppError(http.StatusInternalServerError, "Upload failed", err)
	}

	storagePath := filepath.Join(userDir, newStorageName(header.Filename))
	abs := s.absPath(storagePath)
	dst, err := os.Create(abs)
	if err != nil {
		return models.File{}, newAppError(http.StatusInternalServerError, "Upload failed", err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		_ = os.Remove(abs)
		return models.File{}, newAppError(http.StatusInternalServerError, "Upload failed", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(abs)
		return models.File{}, newAppError(http.StatusInternalServerError, "Upload failed", err)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	record := models.File{
		Name:         sanitizeFileName(header.Filename),
		OriginalName: header.Filename,
		Size:         size,
		MimeType:     mimeType,
		Checksum:     checksum,
		StoragePath:  storagePath,
		UserID:       userID,
		FolderID:     folderID,
	}
	if err := s.files.Create(ctx, nil, &record); err != nil {
		// The blob is already on disk; it is left behind and only logged.
		// Orphan cleanup is an operational concern, not part of the request.
		logger.Warnf("file metadata insert failed, blob orphaned at %s: %v", abs, err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.File{}, newAppError(http.StatusConflict, "File already exists", nil)
		}
		return models.File{}, newAppError(http.StatusInternalServerError, "Upload failed", err)
	}

	return record, nil
}

func (s *fileService) GetDownload(ctx context.Context, userID uint, fileID uint) (models.File, string, error) {
	file, err := s.files.GetByIDAndUser(ctx, nil, fileID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.File{}, "", newAppError(http.StatusNotFound, "File not found", nil)
		}
		return models.File{}, "", newAppError(http.StatusInternalServerError, "Download failed", err)
	}

	abs := s.absPath(file.StoragePath)
	if _, err := os.Stat(abs); err != nil {
		// Metadata without a blob is a server-side inconsistency, not a 404.
		return models.File{}, "", newAppError(http.StatusInternalServerError, "Download failed", err)
	}
	return file, abs, nil
}

func (s *fileService) DeleteFile(ctx context.Context, userID uint, fileID uint) error {
	file, err := s.files.GetByIDAndUser(ctx, nil, fileID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "File not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "Delete failed", err)
	}

	// Blob removal is best-effort; losing the race against the filesystem
	// must not keep the metadata row alive.
	if err := os.Remove(s.absPath(file.StoragePath)); err != nil {
		logger.Warnf("failed to delete blob %s: %v", file.StoragePath, err)
	}

	if err := s.files.DeleteByIDAndUser(ctx, nil, file.ID, userID); err != nil {
		return newAppError(http.StatusInternalServerError, "Delete failed", err)
	}
	return nil
}

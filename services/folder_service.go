package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"filedrive/models"
	"filedrive/repositories"

	"gorm.io/gorm"
)

type FolderService interface {
	ListFolders(ctx context.Context, userID uint, parentID *uint) ([]models.Folder, error)
	CreateFolder(ctx context.Context, userID uint, name string, parentID *uint) (models.Folder, error)
	RenameFolder(ctx context.Context, userID uint, folderID uint, name string) (models.Folder, error)
	DeleteFolder(ctx context.Context, userID uint, folderID uint) error
}

type folderService struct {
	txManager TxManager
	folders   repositories.FolderRepository
	files     repositories.FileRepository
}

func NewFolderService(txManager TxManager, folders repositories.FolderRepository, files repositories.FileRepository) FolderService {
	return &folderService{txManager: txManager, folders: folders, files: files}
}

func validateFolderName(name string) *AppError {
	name = strings.TrimSpace(name)
	if name == "" {
		return newAppError(http.StatusBadRequest, "Invalid input data", nil)
	}
	if len(name) > 255 {
		return newAppError(http.StatusBadRequest, "Invalid input data", nil)
	}
	return nil
}

func (s *folderService) ListFolders(ctx context.Context, userID uint, parentID *uint) ([]models.Folder, error) {
	list, err := s.folders.ListByParent(ctx, nil, userID, parentID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "Failed to list folders", err)
	}
	return list, nil
}

func (s *folderService) CreateFolder(ctx context.Context, userID uint, name string, parentID *uint) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if appErr := validateFolderName(name); appErr != nil {
		return models.Folder{}, appErr
	}

	parentPath := ""
	if parentID != nil {
		parent, err := s.folders.GetByIDAndUser(ctx, nil, *parentID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Folder{}, newAppError(http.StatusNotFound, "Parent folder not found", nil)
			}
			return models.Folder{}, newAppError(http.StatusInternalServerError, "Failed to create folder", err)
		}
		parentPath = parent.Path
	}

	count, err := s.folders.CountByParentAndName(ctx, nil, userID, parentID, name, 0)
	if err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "Failed to create folder", err)
	}
	if count > 0 {
		return models.Folder{}, newAppError(http.StatusConflict, "Folder already exists", nil)
	}

	folder := models.Folder{
		Name:     name,
		Path:     buildFolderPath(parentPath, name),
		ParentID: parentID,
		UserID:   userID,
	}
	if err := s.folders.Create(ctx, nil, &folder); err != nil {
		// The unique index on (user_id, parent_id, name) is the authoritative
		// guard; a concurrent create that slipped past the pre-check lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Folder{}, newAppError(http.StatusConflict, "Folder already exists", nil)
		}
		return models.Folder{}, newAppError(http.StatusInternalServerError, "Failed to create folder", err)
	}

	return folder, nil
}

func (s *folderService) RenameFolder(ctx context.Context, userID uint, folderID uint, name string) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if appErr := validateFolderName(name); appErr != nil {
		return models.Folder{}, appErr
	}

	folder, err := s.folders.GetByIDAndUser(ctx, nil, folderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Folder{}, newAppError(http.StatusNotFound, "Folder not found", nil)
		}
		return models.Folder{}, newAppError(http.StatusInternalServerError, "Failed to rename folder", err)
	}

	count, err := s.folders.CountByParentAndName(ctx, nil, userID, folder.ParentID, name, folder.ID)
	if err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "Failed to rename folder", err)
	}
	if count > 0 {
		return models.Folder{}, newAppError(http.StatusConflict, "Folder already exists", nil)
	}

	parentPath := ""
	if folder.ParentID != nil {
		parent, err := s.folders.GetByIDAndUser(ctx, nil, *folder.ParentID, userID)
		if err != nil {
			return models.Folder{}, newAppError(http.StatusInternalServerError, "Failed to rename folder", err)
		}
		parentPath = parent.Path
	}
	newPath := buildFolderPath(parentPath, name)

	// Only this folder's path is recomputed. Stored paths of descendants go
	// stale after a rename; path is a display hint, the parent chain is the
	// source of truth for the hierarchy.
	if err := s.folders.UpdateByID(ctx, nil, folder.ID, map[string]interface{}{"name": name, "path": newPath}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Folder{}, newAppError(http.StatusConflict, "Folder already exists", nil)
		}
		return models.Folder{}, newAppError(http.StatusInternalServerError, "Failed to rename folder", err)
	}

	folder.Name = name
	folder.Path = newPath
	return folder, nil
}

func (s *folderService) DeleteFolder(ctx context.Context, userID uint, folderID uint) error {
	folder, err := s.folders.GetByIDAndUser(ctx, nil, folderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "Folder not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "Failed to delete folder", err)
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		// Subfolder check first, then files; the order is part of the
		// contract for consistent error messaging. No cascade: the caller
		// empties the folder before deleting it.
		children, err := s.folders.CountChildren(ctx, tx, userID, folder.ID)
		if err != nil {
			return newAppError(http.StatusInternalServerError, "Failed to delete folder", err)
		}
		if children > 0 {
			return newAppError(http.StatusBadRequest, "Cannot delete folder with subfolders", nil)
		}

		fileCount, err := s.files.CountByFolder(ctx, tx, userID, folder.ID)
		if err != nil {
			return newAppError(http.StatusInternalServerError, "Failed to delete folder", err)
		}
		if fileCount > 0 {
			return newAppError(http.StatusBadRequest, "Cannot delete folder with files", nil)
		}

		return s.folders.DeleteByIDAndUser(ctx, tx, folder.ID, userID)
	})
	if err != nil {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return newAppError(http.StatusInternalServerError, "Failed to delete folder", err)
	}
	return nil
}

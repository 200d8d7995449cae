package repositories

import (
	"context"
	"time"

	"filedrive/models"

	"gorm.io/gorm"
)

type TxManager interface {
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type UserRepository interface {
	CountByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (models.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID uint) (models.User, error)
}

type FolderRepository interface {
	GetByIDAndUser(ctx context.Context, tx *gorm.DB, folderID uint, userID uint) (models.Folder, error)
	Create(ctx context.Context, tx *gorm.DB, folder *models.Folder) error
	// ListByParent returns direct children only, name ascending. parentID nil
	// selects root-level folders.
	ListByParent(ctx context.Context, tx *gorm.DB, userID uint, parentID *uint) ([]models.Folder, error)
	CountByParentAndName(ctx context.Context, tx *gorm.DB, userID uint, parentID *uint, name string, excludeID uint) (int64, error)
	CountChildren(ctx context.Context, tx *gorm.DB, userID uint, parentID uint) (int64, error)
	UpdateByID(ctx context.Context, tx *gorm.DB, folderID uint, updates map[string]interface{}) error
	DeleteByIDAndUser(ctx context.Context, tx *gorm.DB, folderID uint, userID uint) error
}

type FileRepository interface {
	// ListByFolder returns files in one folder, newest first. folderID nil
	// selects root-level files.
	ListByFolder(ctx context.Context, tx *gorm.DB, userID uint, folderID *uint) ([]models.File, error)
	FindByUserAndChecksum(ctx context.Context, tx *gorm.DB, userID uint, checksum string) (models.File, error)
	Create(ctx context.Context, tx *gorm.DB, file *models.File) error
	GetByIDAndUser(ctx context.Context, tx *gorm.DB, fileID uint, userID uint) (models.File, error)
	CountByFolder(ctx context.Context, tx *gorm.DB, userID uint, folderID uint) (int64, error)
	DeleteByIDAndUser(ctx context.Context, tx *gorm.DB, fileID uint, userID uint) error
}

// TokenRepository tracks revoked session tokens by jti until they expire on
// their own.
type TokenRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Container struct {
	TxManager TxManager
	Users     UserRepository
	Folders   FolderRepository
	Files     FileRepository
	Tokens    TokenRepository
}

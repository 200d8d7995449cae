package repositories

import (
	"context"

	"filedrive/models"

	"gorm.io/gorm"
)

type GormFolderRepository struct {
	db *gorm.DB
}

func NewGormFolderRepository(db *gorm.DB) *GormFolderRepository {
	return &GormFolderRepository{db: db}
}

func scopeParent(db *gorm.DB, parentID *uint) *gorm.DB {
	if parentID == nil {
		return db.Where("parent_id IS NULL")
	}
	return db.Where("parent_id = ?", *parentID)
}

func (r *GormFolderRepository) GetByIDAndUser(_ context.Context, tx *gorm.DB, folderID uint, userID uint) (models.Folder, error) {
	var folder models.Folder
	err := useTx(r.db, tx).Where("id = ? AND user_id = ?", folderID, userID).First(&folder).Error
	return folder, err
}

func (r *GormFolderRepository) Create(_ context.Context, tx *gorm.DB, folder *models.Folder) error {
	return useTx(r.db, tx).Create(folder).Error
}

func (r *GormFolderRepository) ListByParent(_ context.Context, tx *gorm.DB, userID uint, parentID *uint) ([]models.Folder, error) {
	db := useTx(r.db, tx).Model(&models.Folder{}).Where("user_id = ?", userID)
	var folders []models.Folder
	err := scopeParent(db, parentID).Order("name ASC").Find(&folders).Error
	return folders, err
}

func (r *GormFolderRepository) CountByParentAndName(_ context.Context, tx *gorm.DB, userID uint, parentID *uint, name string, excludeID uint) (int64, error) {
	db := useTx(r.db, tx).Model(&models.Folder{}).Where("user_id = ? AND name = ?", userID, name)
	db = scopeParent(db, parentID)
	if excludeID > 0 {
		db = db.Where("id <> ?", excludeID)
	}
	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *GormFolderRepository) CountChildren(_ context.Context, tx *gorm.DB, userID uint, parentID uint) (int64, error) {
	var count int64
	err := useTx(r.db, tx).Model(&models.Folder{}).
		Where("user_id = ? AND parent_id = ?", userID, parentID).
		Count(&count).Error
	return count, err
}

func (r *GormFolderRepository) UpdateByID(_ context.Context, tx *gorm.DB, folderID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Folder{}).Where("id = ?", folderID).Updates(updates).Error
}

func (r *GormFolderRepository) DeleteByIDAndUser(_ context.Context, tx *gorm.DB, folderID uint, userID uint) error {
	return useTx(r.db, tx).Where("id = ? AND user_id = ?", folderID, userID).Delete(&models.Folder{}).Error
}

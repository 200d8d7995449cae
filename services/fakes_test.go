package services

import (
	"context"
	"sort"
	"time"

	"filedrive/models"

	"gorm.io/gorm"
)

type fakeTxManager struct {
	err error
}

func (m *fakeTxManager) WithTransaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(nil)
}

func sameParent(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type fakeFolderRepo struct {
	folders   map[uint]models.Folder
	nextID    uint
	getErr    error
	createErr error
	countErr  error
	listErr   error
	updateErr error
	deleteErr error
	// hideNames makes the duplicate pre-check miss so tests can drive the
	// check-then-act race into the unique-index path.
	hideNames bool
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: map[uint]models.Folder{}, nextID: 1}
}

func (r *fakeFolderRepo) GetByIDAndUser(_ context.Context, _ *gorm.DB, folderID uint, userID uint) (models.Folder, error) {
	if r.getErr != nil {
		return models.Folder{}, r.getErr
	}
	folder, ok := r.folders[folderID]
	if !ok || folder.UserID != userID {
		return models.Folder{}, gorm.ErrRecordNotFound
	}
	return folder, nil
}

func (r *fakeFolderRepo) Create(_ context.Context, _ *gorm.DB, folder *models.Folder) error {
	if r.createErr != nil {
		return r.createErr
	}
	// Emulates idx_folder_owner_name for non-NULL parents.
	if folder.ParentID != nil {
		for _, existing := range r.folders {
			if existing.UserID == folder.UserID && existing.Name == folder.Name && sameParent(existing.ParentID, folder.ParentID) {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	if folder.ID == 0 {
		folder.ID = r.nextID
		r.nextID++
	}
	folder.CreatedAt = time.Now()
	folder.UpdatedAt = folder.CreatedAt
	r.folders[folder.ID] = *folder
	return nil
}

func (r *fakeFolderRepo) ListByParent(_ context.Context, _ *gorm.DB, userID uint, parentID *uint) ([]models.Folder, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Folder, 0)
	for _, folder := range r.folders {
		if folder.UserID == userID && sameParent(folder.ParentID, parentID) {
			out = append(out, folder)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeFolderRepo) CountByParentAndName(_ context.Context, _ *gorm.DB, userID uint, parentID *uint, name string, excludeID uint) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	if r.hideNames {
		return 0, nil
	}
	var count int64
	for _, folder := range r.folders {
		if folder.UserID == userID && folder.ID != excludeID && folder.Name == name && sameParent(folder.ParentID, parentID) {
			count++
		}
	}
	return count, nil
}

func (r *fakeFolderRepo) CountChildren(_ context.Context, _ *gorm.DB, userID uint, parentID uint) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	var count int64
	for _, folder := range r.folders {
		if folder.UserID == userID && folder.ParentID != nil && *folder.ParentID == parentID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFolderRepo) UpdateByID(_ context.Context, _ *gorm.DB, folderID uint, updates map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	folder, ok := r.folders[folderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range updates {
		switch key {
		case "name":
			folder.Name = value.(string)
		case "path":
			folder.Path = value.(string)
		}
	}
	folder.UpdatedAt = time.Now()
	r.folders[folderID] = folder
	return nil
}

func (r *fakeFolderRepo) DeleteByIDAndUser(_ context.Context, _ *gorm.DB, folderID uint, userID uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	folder, ok := r.folders[folderID]
	if !ok || folder.UserID != userID {
		return nil
	}
	delete(r.folders, folderID)
	return nil
}

type fakeFileRepo struct {
	files     map[uint]models.File
	nextID    uint
	createErr error
	listErr   error
	getErr    error
	deleteErr error
	// hideChecksums makes the pre-check read miss so tests can drive the
	// check-then-act race into the unique-index path.
	hideChecksums bool
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[uint]models.File{}, nextID: 1}
}

func (r *fakeFileRepo) ListByFolder(_ context.Context, _ *gorm.DB, userID uint, folderID *uint) ([]models.File, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.File, 0)
	for _, file := range r.files {
		if file.UserID == userID && sameParent(file.FolderID, folderID) {
			out = append(out, file)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeFileRepo) FindByUserAndChecksum(_ context.Context, _ *gorm.DB, userID uint, checksum string) (models.File, error) {
	if !r.hideChecksums {
		for _, file := range r.files {
			if file.UserID == userID && file.Checksum == checksum {
				return file, nil
			}
		}
	}
	return models.File{}, gorm.ErrRecordNotFound
}

func (r *fakeFileRepo) Create(_ context.Context, _ *gorm.DB, file *models.File) error {
	if r.createErr != nil {
		return r.createErr
	}
	// Emulates idx_file_owner_checksum.
	for _, existing := range r.files {
		if existing.UserID == file.UserID && existing.Checksum == file.Checksum {
			return gorm.ErrDuplicatedKey
		}
	}
	if file.ID == 0 {
		file.ID = r.nextID
		r.nextID++
	}
	file.CreatedAt = time.Now()
	file.UpdatedAt = file.CreatedAt
	r.files[file.ID] = *file
	return nil
}

func (r *fakeFileRepo) GetByIDAndUser(_ context.Context, _ *gorm.DB, fileID uint, userID uint) (models.File, error) {
	if r.getErr != nil {
		return models.File{}, r.getErr
	}
	file, ok := r.files[fileID]
	if !ok || file.UserID != userID {
		return models.File{}, gorm.ErrRecordNotFound
	}
	return file, nil
}

func (r *fakeFileRepo) CountByFolder(_ context.Context, _ *gorm.DB, userID uint, folderID uint) (int64, error) {
	var count int64
	for _, file := range r.files {
		if file.UserID == userID && file.FolderID != nil && *file.FolderID == folderID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFileRepo) DeleteByIDAndUser(_ context.Context, _ *gorm.DB, fileID uint, userID uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	file, ok := r.files[fileID]
	if !ok || file.UserID != userID {
		return nil
	}
	delete(r.files, fileID)
	return nil
}

type fakeUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]models.User{}, nextID: 1}
}

func (r *fakeUserRepo) CountByEmail(_ context.Context, _ *gorm.DB, email string) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.Email == email {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) Create(_ context.Context, _ *gorm.DB, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ *gorm.DB, email string) (models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, _ *gorm.DB, userID uint) (models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

type fakeTokenRepo struct {
	revoked   map[string]time.Duration
	revokeErr error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{revoked: map[string]time.Duration{}}
}

func (r *fakeTokenRepo) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if r.revokeErr != nil {
		return r.revokeErr
	}
	r.revoked[tokenID] = ttl
	return nil
}

func (r *fakeTokenRepo) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, nil
}

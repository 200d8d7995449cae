package models

import "time"

// File is the metadata row for one stored blob. StoragePath is relative to
// the storage base path and never derived from the user-supplied name; the
// blob itself lives on disk. FolderID nil means the file sits at the root.
//
// idx_file_owner_checksum enforces per-user content deduplication: the same
// user cannot hold byte-identical content twice, whatever it is named.
type File struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	OriginalName string    `gorm:"type:varchar(255);not null" json:"original_name"`
	Size         int64     `gorm:"not null" json:"size"`
	MimeType     string    `gorm:"type:varchar(100)" json:"mime_type"`
	Checksum     string    `gorm:"type:char(64);not null;uniqueIndex:idx_file_owner_checksum" json:"checksum"`
	StoragePath  string    `gorm:"type:varchar(1000);not null" json:"storage_path"`
	UserID       uint      `gorm:"not null;index;uniqueIndex:idx_file_owner_checksum" json:"user_id"`
	FolderID     *uint     `gorm:"index" json:"folder_id"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

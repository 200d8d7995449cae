package models

import "time"

// Folder is one node of a per-user tree. ParentID is nil for root-level
// folders. Path is materialized at create/rename time and never re-derived
// on read; a parent rename does not rewrite descendant paths.
//
// The composite unique index closes the check-then-act race on sibling
// names. MySQL and SQLite both treat NULLs as distinct, so for root-level
// folders (parent_id IS NULL) the application-level pre-check is the
// effective guard.
type Folder struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_folder_owner_name" json:"name"`
	Path      string    `gorm:"type:varchar(1000);not null" json:"path"`
	ParentID  *uint     `gorm:"uniqueIndex:idx_folder_owner_name" json:"parent_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_folder_owner_name" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

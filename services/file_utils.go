package services

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	unsafeChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// sanitizeFileName makes a user-supplied name safe for display and logging.
// It is never used as an on-disk name; see newStorageName.
func sanitizeFileName(name string) string {
	name = unsafeChars.ReplaceAllString(name, "_")
	return whitespace.ReplaceAllString(name, "_")
}

// newStorageName allocates a fresh on-disk name, independent of the original
// name so user input can neither collide nor traverse paths. The extension is
// kept for convenience.
func newStorageName(originalName string) string {
	ext := strings.TrimPrefix(filepath.Ext(filepath.Base(originalName)), ".")
	return uuid.New().String() + "." + ext
}

func checksumContent(r io.Reader) (string, int64, error) {
	hasher := sha256.New()
	n, err := io.Copy(hasher, r)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(hasher.Sum(nil)), n, nil
}

// buildFolderPath materializes the human-readable path of a folder: root
// folders get "/name", nested ones append to the parent's path.
func buildFolderPath(parentPath string, name string) string {
	if parentPath == "" {
		return "/" + name
	}
	return parentPath + "/" + name
}

package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"filedrive/models"
	"filedrive/utils"

	"github.com/gin-gonic/gin"
)

// fileResponse renders Size as a decimal string: byte counts can cross the
// 2^53 safe-integer boundary and would lose precision as a JSON number in
// some consumers. This is a wire contract, not cosmetics.
type fileResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	OriginalName string    `json:"originalName"`
	Size         string    `json:"size"`
	MimeType     string    `json:"mimeType"`
	FolderID     *uint     `json:"folderId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toFileResponse(f models.File) fileResponse {
	return fileResponse{
		ID:           f.ID,
		Name:         f.Name,
		OriginalName: f.OriginalName,
		Size:         strconv.FormatInt(f.Size, 10),
		MimeType:     f.MimeType,
		FolderID:     f.FolderID,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func (h *Handlers) ListFiles(c *gin.Context) {
	folderID, ok := parseOptionalIDQuery(c, "folderId")
	if !ok {
		return
	}

	files, err := h.svc.File.ListFiles(c.Request.Context(), currentUserID(c), folderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]fileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, toFileResponse(f))
	}
	utils.JSON(c, http.StatusOK, out)
}

func (h *Handlers) UploadFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	var folderID *uint
	if raw := c.PostForm("folderId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			utils.Error(c, http.StatusBadRequest, "Invalid input data")
			return
		}
		v := uint(id)
		folderID = &v
	}

	saved, err := h.svc.File.UploadFile(c.Request.Context(), currentUserID(c), folderID, file, header)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, gin.H{
		"id":           saved.ID,
		"name":         saved.Name,
		"originalName": saved.OriginalName,
		"size":         strconv.FormatInt(saved.Size, 10),
		"mimeType":     saved.MimeType,
		"folderId":     saved.FolderID,
		"createdAt":    saved.CreatedAt,
	})
}

func (h *Handlers) DownloadFile(c *gin.Context) {
	fileID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, absPath, err := h.svc.File.GetDownload(c.Request.Context(), currentUserID(c), fileID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	reader, err := os.Open(absPath)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer reader.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.OriginalName),
	}
	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, reader, extraHeaders)
}

func (h *Handlers) DeleteFile(c *gin.Context) {
	fileID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.File.DeleteFile(c.Request.Context(), currentUserID(c), fileID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Message(c, "File deleted successfully")
}

package handlers

import (
	"net/http"
	"time"

	"filedrive/models"
	"filedrive/utils"

	"github.com/gin-gonic/gin"
)

type CreateFolderRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	ParentID *uint  `json:"parentId"`
}

type RenameFolderRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type folderResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	ParentID  *uint     `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toFolderResponse(f models.Folder) folderResponse {
	return folderResponse{
		ID:        f.ID,
		Name:      f.Name,
		Path:      f.Path,
		ParentID:  f.ParentID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (h *Handlers) ListFolders(c *gin.Context) {
	parentID, ok := parseOptionalIDQuery(c, "parentId")
	if !ok {
		return
	}

	folders, err := h.svc.Folder.ListFolders(c.Request.Context(), currentUserID(c), parentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]folderResponse, 0, len(folders))
	for _, f := range folders {
		out = append(out, toFolderResponse(f))
	}
	utils.JSON(c, http.StatusOK, out)
}

func (h *Handlers) CreateFolder(c *gin.Context) {
	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetails(c, http.StatusBadRequest, "Invalid input data", err.Error())
		return
	}

	folder, err := h.svc.Folder.CreateFolder(c.Request.Context(), currentUserID(c), req.Name, req.ParentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, gin.H{
		"id":        folder.ID,
		"name":      folder.Name,
		"path":      folder.Path,
		"parentId":  folder.ParentID,
		"createdAt": folder.CreatedAt,
	})
}

func (h *Handlers) RenameFolder(c *gin.Context) {
	folderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetails(c, http.StatusBadRequest, "Invalid input data", err.Error())
		return
	}

	folder, err := h.svc.Folder.RenameFolder(c.Request.Context(), currentUserID(c), folderID, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, toFolderResponse(folder))
}

func (h *Handlers) DeleteFolder(c *gin.Context) {
	folderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Folder.DeleteFolder(c.Request.Context(), currentUserID(c), folderID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Message(c, "Folder deleted successfully")
}

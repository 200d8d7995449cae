package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the API surface. authGate guards everything except
// health and the login/register pair; in degraded mode (no database) the
// caller passes middleware.Unavailable instead.
func RegisterRoutes(r *gin.Engine, h *Handlers, authGate gin.HandlerFunc) {
	api := r.Group("/api")

	api.GET("/health", h.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	protected := api.Group("")
	protected.Use(authGate)
	{
		protected.POST("/auth/logout", h.Logout)
		protected.GET("/auth/profile", h.Profile)

		protected.GET("/folders", h.ListFolders)
		protected.POST("/folders", h.CreateFolder)
		protected.PUT("/folders/:id", h.RenameFolder)
		protected.DELETE("/folders/:id", h.DeleteFolder)

		protected.GET("/files", h.ListFiles)
		protected.POST("/files/upload", h.UploadFile)
		protected.GET("/files/:id", h.DownloadFile)
		protected.DELETE("/files/:id", h.DeleteFile)
	}
}

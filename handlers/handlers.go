package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"filedrive/logger"
	"filedrive/services"
	"filedrive/utils"

	"github.com/gin-gonic/gin"
)

// Handlers is the thin adapter between HTTP and the service layer. A nil
// services container means the process runs without a database; the guarded
// routes never reach these methods then (see middleware.Unavailable), only
// the open auth routes need the explicit check.
type Handlers struct {
	svc          *services.Container
	dbConfigured bool
}

func New(svc *services.Container, dbConfigured bool) *Handlers {
	return &Handlers{svc: svc, dbConfigured: dbConfigured}
}

func (h *Handlers) serviceUnavailable(c *gin.Context) bool {
	if h.svc != nil {
		return false
	}
	utils.Error(c, http.StatusServiceUnavailable, "Database not available")
	return true
}

// respondServiceError converts service failures to the uniform error body.
// Unexpected errors are logged server-side and reported generically.
func respondServiceError(c *gin.Context, err error) {
	var appErr *services.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			logger.L().Error().Err(appErr.Err).Int("status", appErr.HTTPCode).Msg(appErr.Message)
		}
		if appErr.Data != nil {
			utils.ErrorWithDetails(c, appErr.HTTPCode, appErr.Message, appErr.Data)
			return
		}
		utils.Error(c, appErr.HTTPCode, appErr.Message)
		return
	}
	logger.L().Error().Err(err).Msg("unhandled service error")
	utils.Error(c, http.StatusInternalServerError, "Internal server error")
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// parseIDParam reads a numeric path parameter; 0 is never a valid ID.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.Error(c, http.StatusBadRequest, "Invalid input data")
		return 0, false
	}
	return uint(id), true
}

// parseOptionalIDQuery reads an optional numeric query parameter; absence
// (or empty) selects the root scope and comes back as nil.
func parseOptionalIDQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.Error(c, http.StatusBadRequest, "Invalid input data")
		return nil, false
	}
	v := uint(id)
	return &v, true
}

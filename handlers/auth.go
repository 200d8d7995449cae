package handlers

import (
	"net/http"

	"filedrive/middleware"
	"filedrive/services"
	"filedrive/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handlers) Register(c *gin.Context) {
	if h.serviceUnavailable(c) {
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetails(c, http.StatusBadRequest, "Invalid input data", err.Error())
		return
	}

	user, err := h.svc.Auth.Register(c.Request.Context(), services.RegisterInput{Email: req.Email, Password: req.Password})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, user)
}

func (h *Handlers) Login(c *gin.Context) {
	if h.serviceUnavailable(c) {
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetails(c, http.StatusBadRequest, "Invalid input data", err.Error())
		return
	}

	out, err := h.svc.Auth.Login(c.Request.Context(), services.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// The cookie is what the auth gate reads; the token is also returned in
	// the body for non-browser clients.
	c.SetCookie(middleware.TokenCookie, out.Token, 0, "/", "", false, true)
	utils.JSON(c, http.StatusOK, out)
}

func (h *Handlers) Logout(c *gin.Context) {
	claims, ok := c.Get(middleware.ContextClaims)
	if !ok {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.svc.Auth.Logout(c.Request.Context(), claims.(*utils.Claims)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	utils.Message(c, "Logged out")
}

func (h *Handlers) Profile(c *gin.Context) {
	out, err := h.svc.Auth.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, out)
}

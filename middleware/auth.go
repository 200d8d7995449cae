package middleware

import (
	"errors"
	"net/http"
	"strings"

	"filedrive/repositories"
	"filedrive/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	TokenCookie    = "token"
	ContextUserKey = "user_id"
	ContextClaims  = "token_claims"
)

// Auth is the gate in front of every protected route. It fails closed: a
// missing, malformed, expired, or revoked token, or a token whose user no
// longer exists, all collapse into a bare 401. The user row is re-fetched on
// every request so a deleted user loses access immediately, token validity
// notwithstanding.
func Auth(users repositories.UserRepository, tokens repositories.TokenRepository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			unauthorized(c)
			return
		}

		claims, err := utils.ParseToken(secret, token)
		if err != nil {
			unauthorized(c)
			return
		}

		revoked, err := tokens.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			unauthorized(c)
			return
		}

		user, err := users.GetByID(c.Request.Context(), nil, claims.UserID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusServiceUnavailable, "Database not available")
				c.Abort()
				return
			}
			unauthorized(c)
			return
		}

		c.Set(ContextUserKey, user.ID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// Unavailable replaces Auth when the process runs without a database; every
// guarded route answers 503 instead of pretending to authenticate.
func Unavailable() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.Error(c, http.StatusServiceUnavailable, "Database not available")
		c.Abort()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func unauthorized(c *gin.Context) {
	utils.Error(c, http.StatusUnauthorized, "Unauthorized")
	c.Abort()
}

package utils

import "github.com/gin-gonic/gin"

// JSON writes a success payload as-is. Error bodies are always
// {"error": "...", "details": ...}; internal error text never reaches the
// wire, callers pass a caller-safe message.
func JSON(c *gin.Context, code int, payload any) {
	c.JSON(code, payload)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func ErrorWithDetails(c *gin.Context, code int, message string, details any) {
	c.JSON(code, gin.H{"error": message, "details": details})
}

func Message(c *gin.Context, message string) {
	c.JSON(200, gin.H{"message": message})
}

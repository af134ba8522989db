package response

import "github.com/gin-gonic/gin"

// Success writes the uniform success envelope. Every handler answers with
// either this or Error, never a bare payload.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the uniform error envelope. code is a stable machine-readable
// identifier; message is for humans.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "safe-rescue.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response mapped from the domain error taxonomy:
// validation 400, not-found 404, conflict 409, everything else 500.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.From(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

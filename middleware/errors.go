package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is the top-level safety net. Validation and domain failures
// are shaped into their envelopes by the handlers themselves; anything that
// panics or is attached via c.Error ends up here as a plain 500.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Something went wrong",
				})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			log.Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(c.Errors.Last().Err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Something went wrong",
			})
		}
	}
}

package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-sanitizer/internal/pkg/httputil"
)

// Recovery turns a panic inside a handler into the standard 500 envelope.
// A panic while decoding one photo is caught by the batch itself, so this
// only fires for bugs outside the pipeline.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					zap.Any("error", rec),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("stack", string(debug.Stack())),
					zap.String("request_id", c.GetString(RequestIDKey)),
				)

				httputil.InternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

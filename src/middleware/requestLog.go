package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hotelops/backoffice/src/logger"
)

const headerRequestID = "X-Request-Id"

// RequestID reuses the caller's X-Request-Id or generates one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqID := strings.TrimSpace(ctx.GetHeader(headerRequestID))
		if reqID == "" {
			reqID = uuid.New().String()
		}
		ctx.Set("request_id", reqID)
		ctx.Writer.Header().Set(headerRequestID, reqID)
		ctx.Next()
	}
}

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		if log == nil {
			return
		}

		status := ctx.Writer.Status()
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		fields := []interface{}{
			"method", strings.ToUpper(ctx.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if reqID := ctx.GetString("request_id"); reqID != "" {
			fields = append(fields, "request_id", reqID)
		}
		if userID, ok := CurrentUserID(ctx); ok {
			fields = append(fields, "user_id", userID)
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, "error", ctx.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

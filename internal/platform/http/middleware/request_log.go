// Package middleware はアプリ全体に適用するginミドルウェアを提供します。
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID はリクエストIDを受け渡すヘッダー名です。
	HeaderRequestID = "X-Request-ID"
	// ContextRequestID はgin.Contextに保存するリクエストIDのキーです。
	ContextRequestID = "requestID"

	maxRequestIDLength = 128
)

// RequestID はクライアントから受け取ったX-Request-IDを引き継ぎ、なければUUIDを採番します。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger はリクエストごとに1行の構造化ログを出力します。
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString(ContextRequestID),
			"remote_addr", c.ClientIP(),
		}
		switch {
		case c.Writer.Status() >= 500:
			slog.Error("request completed", attrs...)
		case c.Writer.Status() >= 400:
			slog.Warn("request completed", attrs...)
		default:
			slog.Info("request completed", attrs...)
		}
	}
}

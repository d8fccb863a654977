package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/bookstore-admin/pkg/logger"
)

const headerRequestID = "X-Request-ID"

// RequestLogger 请求日志中间件
// 每个请求分配request_id(客户端可自带,便于跨服务追踪),
// 记录方法、路径、状态码、耗时
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(headerRequestID, requestID)

		start := time.Now()
		c.Next()
		cost := time.Since(start)

		logger.Info("http request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"cost", cost.String(),
			"client_ip", c.ClientIP(),
		)
	}
}

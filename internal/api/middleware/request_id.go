package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxKeyRequestID 请求 ID 的上下文键
const CtxKeyRequestID = "request_id"

const headerRequestID = "X-Request-ID"

// RequestID 为每个请求生成或透传请求 ID，便于全链路排查
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(CtxKeyRequestID, requestID)
		c.Header(headerRequestID, requestID)
		c.Next()
	}
}

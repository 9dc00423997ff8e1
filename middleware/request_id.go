package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求标识头，入站没有就生成一个，响应原样带回。
const RequestIDHeader = "X-Request-ID"

// RequestIDKey gin.Context 中存放请求标识的键。
const RequestIDKey = "request_id"

// RequestIDMiddleware 为每个请求分配/透传请求标识，供访问日志串联。
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

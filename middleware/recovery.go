package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yunshare/resource_service/pkg/response"
)

// RecoveryMiddleware 捕获后续中间件和 handler 的 panic，
// 记录堆栈后返回统一的 500 信封，避免进程被单个请求拖垮。
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("handler panic",
					zap.Any("panic", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(RequestIDKey)),
					zap.Stack("stack"),
				)
				response.RespondError(c, http.StatusInternalServerError, response.CodeServerError, "服务器内部错误")
				c.Abort()
			}
		}()
		c.Next()
	}
}

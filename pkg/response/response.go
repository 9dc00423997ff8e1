package response

import "github.com/gin-gonic/gin"

// 业务码约定：与 HTTP 状态码同值，前端只看 code 字段。
const (
	CodeSuccess          = 200
	CodeInvalidParam     = 400
	CodeNotFound         = 404
	CodeMethodNotAllowed = 405
	CodeServerError      = 500
)

// Response 统一响应信封 {code, message, data}。
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// RespondSuccess 输出成功响应，HTTP 状态码固定为 200。
func RespondSuccess[T any](c *gin.Context, data T, message string) {
	if message == "" {
		message = "success"
	}
	c.JSON(200, Response[T]{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// RespondError 输出失败响应，data 恒为 null。
// httpStatus 与 code 通常同值（400/404/405/500）。
func RespondError(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, Response[any]{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yunshare/resource_service/constant"
	"github.com/yunshare/resource_service/controller"
	"github.com/yunshare/resource_service/middleware"
	"github.com/yunshare/resource_service/pkg/core"
	"github.com/yunshare/resource_service/pkg/response"
	"github.com/yunshare/resource_service/service"
)

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	gate *service.StoreGate,
	resourceController *controller.ResourceController,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 使用 gin.New() 而不是 gin.Default()，Recovery 和访问日志用自己的实现
	router := gin.New()

	// 1. 请求标识（最先，后续日志都要用）
	router.Use(middleware.RequestIDMiddleware())

	// 2. CORS（公开只读接口，放开 GET）
	router.Use(middleware.CORSMiddleware())

	// 3. 访问日志
	router.Use(middleware.RequestLoggerMiddleware(logger.Logger()))

	// 4. Panic Recovery（捕获 handler 的 panic，返回统一 500 信封）
	router.Use(middleware.RecoveryMiddleware(logger.Logger()))

	logger.Debug("已注册全局中间件")

	// --- 创建 API 分组并注册控制器路由 ---
	api := router.Group("/api")
	resourceController.RegisterRoutes(api)
	logger.Info("资源查询路由已注册到 /api 分组")

	// --- 方法/路径不匹配的统一信封 ---
	router.NoMethod(func(c *gin.Context) {
		response.RespondError(c, http.StatusMethodNotAllowed, response.CodeMethodNotAllowed, "不支持的请求方法")
	})
	router.NoRoute(func(c *gin.Context) {
		response.RespondError(c, http.StatusNotFound, response.CodeNotFound, "接口不存在")
	})
	router.HandleMethodNotAllowed = true

	// --- 健康检查 ---
	router.GET("/health", func(c *gin.Context) {
		mode := "live"
		if gate.Degraded() {
			mode = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   constant.ServiceName,
			"version":   constant.ServiceVersion,
			"mode":      mode,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	logger.Info("Gin 路由器设置完成")
	return router
}

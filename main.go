package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/yunshare/resource_service/config"
	"github.com/yunshare/resource_service/controller"
	"github.com/yunshare/resource_service/dependencies"
	"github.com/yunshare/resource_service/pkg/core"
	mysqlRepo "github.com/yunshare/resource_service/repo/mysql"
	"github.com/yunshare/resource_service/repo/static"
	"github.com/yunshare/resource_service/router"
	"github.com/yunshare/resource_service/service"
)

func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.ResourceConfig
	if err := core.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 MySQL（允许失败）
	// 存储不可用不是致命错误：探针会以降级状态启动，全部读取走静态目录
	var db *gorm.DB
	if cfg.MySQLConfig.Write.DSN != "" {
		var dbErr error
		db, dbErr = dependencies.InitMySQL(&cfg, logger)
		if dbErr != nil {
			logger.Warn("初始化 MySQL 失败，服务将以降级模式启动", zap.Error(dbErr))
			db = nil
		} else {
			logger.Info("MySQL 数据库连接成功")
		}
	} else {
		logger.Warn("未配置数据库，服务将以降级模式启动")
	}

	// --- 4. 初始化数据层 ---
	var resourceRepo mysqlRepo.ResourceRepository
	if db != nil {
		resourceRepo = mysqlRepo.NewResourceRepository(db, logger)
	}
	catalog := static.NewCatalog()
	logger.Debug("数据层初始化完成", zap.Int("静态目录条目数", catalog.Size()))

	// --- 5. 初始化服务层 ---
	gate := service.NewStoreGate(resourceRepo, logger)
	queryService := service.NewResourceQueryService(gate, resourceRepo, catalog, logger)
	logger.Debug("Services 初始化完成")

	// --- 6. 初始化控制器层 ---
	resourceController := controller.NewResourceController(queryService)
	logger.Debug("Controllers 初始化完成")

	// --- 7. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, gate, resourceController)
	logger.Info("Gin 路由器已设置")

	// --- 8. 启动 HTTP 服务器 ---
	port := cfg.ServerConfig.Port
	if port == "" {
		port = "3001"
	}
	serverAddr := fmt.Sprintf(":%s", port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// --- 9. 优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	logger.Info("服务已成功关闭")
}

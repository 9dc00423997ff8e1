package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	appConfig "github.com/yunshare/resource_service/config"
	"github.com/yunshare/resource_service/dependencies"
	"github.com/yunshare/resource_service/pkg/core"
)

// 资源目录的开发数据填充工具。
// - 资源服务自身没有写入接口（录入由外部流程负责），本工具扮演那个外部流程，
//   直接向数据库写入示例资源和元数据。
func main() {
	// --- 0. 解析命令行参数 ---
	var configFile string
	var numResources int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numResources, "n", 50, "要生成的随机资源数量 (默认: 50)")
	flag.Parse()

	if numResources < 0 {
		fmt.Println("错误: 生成数量不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.ResourceConfig
	if err := core.LoadConfig(configFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", configFile, err)
		os.Exit(1)
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()

	// --- 3. 初始化 MySQL 数据库连接 ---
	// seeder 必须有数据库可写，连接失败直接退出
	if cfg.MySQLConfig.Write.DSN == "" {
		logger.Fatal("Seeder 需要配置 mysqlConfig.write.dsn")
	}
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 填充数据 ---
	Seed(context.Background(), db, logger, numResources)
}

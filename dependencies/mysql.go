// dependencies/mysql.go
package dependencies

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/yunshare/resource_service/config"
	"github.com/yunshare/resource_service/models/entities"
	"github.com/yunshare/resource_service/pkg/core"
)

// InitMySQL 初始化 MySQL 连接，并配置读写分离 (如果配置了从库)。
// - 返回错误不致命：调用方应视为“存储不可用”，以降级模式继续启动。
func InitMySQL(cfg *appConfig.ResourceConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig

	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysqlConfig.write.dsn) 未配置")
	}

	gormConfig := &gorm.Config{
		Logger: core.NewGormLogger(logger, cfg.GormLogConfig),
	}

	var db *gorm.DB
	var err error
	maxRetries := 3
	retryInterval := 2 * time.Second

	// 重试连接主库
	logger.Info("开始连接主数据库...")
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(mysql.Open(mysqlCfg.Write.DSN), gormConfig)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					err = nil
					break
				} else {
					err = pingErr
				}
			} else {
				err = dbErr
			}
		}
		logger.Warn("无法连接到主数据库，尝试重试",
			zap.Int("retry", i+1),
			zap.Int("maxRetries", maxRetries),
			zap.Error(err),
		)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接到主数据库: %w", err)
	}
	logger.Info("成功连接到主数据库")

	// --- 配置读写分离 (dbresolver) ---
	readReplicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replicaCfg := range mysqlCfg.Read {
		if replicaCfg.DSN == "" {
			logger.Warn("发现空的从库 DSN 配置，已跳过", zap.Int("index", i))
			continue
		}
		readReplicas = append(readReplicas, mysql.Open(replicaCfg.DSN))
	}

	// 只有在配置了有效的从库时才启用读写分离插件
	if len(readReplicas) > 0 {
		resolverConfig := dbresolver.Config{
			Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
			Replicas: readReplicas,
			Policy:   dbresolver.StrictRoundRobinPolicy(),
		}
		if err := db.Use(dbresolver.Register(resolverConfig)); err != nil {
			return nil, fmt.Errorf("配置 GORM 读写分离失败: %w", err)
		}
		logger.Info("成功配置 GORM 读写分离插件", zap.Int("从库数量", len(readReplicas)))
	} else {
		logger.Info("未配置有效的从数据库，不启用读写分离")
	}

	// --- 配置连接池 ---
	sqlDB, dbErr := db.DB()
	if dbErr != nil {
		return nil, fmt.Errorf("无法获取数据库对象: %w", dbErr)
	}
	if mysqlCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(mysqlCfg.MaxIdleConns)
	}
	if mysqlCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(mysqlCfg.MaxOpenConns)
	}
	if mysqlCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(mysqlCfg.ConnMaxLifetime) * time.Second)
	}

	// --- 自动迁移 ---
	// 本服务自身不写入这些表（浏览量除外），迁移只为开发环境和 seeder 准备表结构
	logger.Info("开始执行数据库自动迁移...")
	if err := db.AutoMigrate(
		&entities.Resource{},
		&entities.ResourceMeta{},
	); err != nil {
		return nil, fmt.Errorf("数据库自动迁移失败: %w", err)
	}
	logger.Info("数据库自动迁移完成")

	return db, nil
}

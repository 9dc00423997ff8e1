package core

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogConfig GORM 日志适配器的配置。
type GormLogConfig struct {
	// Level 日志级别: silent / error / warn / info
	Level string `mapstructure:"level" json:"level" yaml:"level"`
	// SlowThresholdMs 慢查询阈值（毫秒），0 表示使用默认值 200ms
	SlowThresholdMs int `mapstructure:"slowThresholdMs" json:"slowThresholdMs" yaml:"slowThresholdMs"`
}

// gormLogger 将 GORM 的日志输出桥接到 ZapLogger。
type gormLogger struct {
	logger        *ZapLogger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger 构建实现 gorm logger.Interface 的适配器。
func NewGormLogger(logger *ZapLogger, cfg GormLogConfig) gormlogger.Interface {
	level := gormlogger.Warn
	switch cfg.Level {
	case "silent":
		level = gormlogger.Silent
	case "error":
		level = gormlogger.Error
	case "info":
		level = gormlogger.Info
	}

	slow := 200 * time.Millisecond
	if cfg.SlowThresholdMs > 0 {
		slow = time.Duration(cfg.SlowThresholdMs) * time.Millisecond
	}

	return &gormLogger{
		logger:        logger,
		level:         level,
		slowThreshold: slow,
	}
}

func (g *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.logger.Info("gorm", zap.String("msg", msg), zap.Any("args", args))
	}
}

func (g *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.logger.Warn("gorm", zap.String("msg", msg), zap.Any("args", args))
	}
}

func (g *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.logger.Error("gorm", zap.String("msg", msg), zap.Any("args", args))
	}
}

// Trace 记录 SQL 执行情况。ErrRecordNotFound 属于正常业务结果，不按错误记录。
func (g *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		g.logger.Error("gorm trace",
			zap.Error(err),
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
		)
	case elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		g.logger.Warn("gorm 慢查询",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", g.slowThreshold),
		)
	case g.level >= gormlogger.Info:
		g.logger.Debug("gorm trace",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
		)
	}
}

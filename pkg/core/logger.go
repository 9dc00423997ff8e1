package core

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig 日志组件的配置。
type ZapConfig struct {
	// Level 日志级别: debug / info / warn / error
	Level string `mapstructure:"level" json:"level" yaml:"level"`
	// Encoding 输出格式: json 或 console
	Encoding string `mapstructure:"encoding" json:"encoding" yaml:"encoding"`
}

// ZapLogger 是对 *zap.Logger 的轻量封装，统一各层的日志入口。
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger 根据配置构建 ZapLogger。
// - 不认识的级别回落到 info，不认识的编码回落到 json。
func NewZapLogger(cfg ZapConfig) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
		}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	return &ZapLogger{logger: zap.New(core, zap.AddCaller())}, nil
}

// Logger 返回底层的 *zap.Logger，供需要原生接口的组件（如中间件）使用。
func (l *ZapLogger) Logger() *zap.Logger {
	return l.logger
}

func (l *ZapLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Debug(msg, fields...)
}

func (l *ZapLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Info(msg, fields...)
}

func (l *ZapLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Warn(msg, fields...)
}

func (l *ZapLogger) Error(msg string, fields ...zap.Field) {
	l.logger.Error(msg, fields...)
}

// Fatal 记录日志后退出进程，仅用于启动阶段的不可恢复错误。
func (l *ZapLogger) Fatal(msg string, fields ...zap.Field) {
	l.logger.Fatal(msg, fields...)
}

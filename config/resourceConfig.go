package config

import "github.com/yunshare/resource_service/pkg/core"

// ResourceConfig 资源查询服务的顶层配置。
// - MySQL 配置允许整体缺失：此时服务以降级模式启动，全部读取走内置静态目录。
type ResourceConfig struct {
	ZapConfig     core.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig core.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig  ServerConfig       `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	MySQLConfig   MySQLConfig        `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
}

// ServerConfig HTTP 服务配置。
type ServerConfig struct {
	// Port 监听端口
	Port string `mapstructure:"port" json:"port" yaml:"port"`
}
